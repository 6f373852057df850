// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// kernel errors - these are protocol visible, see Code()
const (
	ErrOutputNotesOverflow = LengthError("number of output notes exceeds the maximum")
	ErrInvalidNoteType     = InvalidError("invalid note type")
	ErrTagPrefixMismatch   = InvalidError("note tag prefix does not match note type")
	ErrTagHighBitsSet      = InvalidError("note tag reserved high bits are set")
	ErrAssetInvalid        = InvalidError("asset is not well formed")
	ErrTransactionAborted  = ProcessError("transaction execution aborted")
)

// common errors - keep in alphabetic order
const (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCannotDecodeAccount   = InvalidError("cannot decode account")
	ErrChecksumMismatch      = InvalidError("checksum mismatch")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrInvalidAccountId      = InvalidError("invalid account id")
	ErrInvalidEventCode      = InvalidError("invalid event code")
	ErrInvalidFieldElement   = InvalidError("value is not a valid field element")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidNoteTag        = InvalidError("invalid note tag")
	ErrInvalidWordLength     = LengthError("invalid word length")
	ErrMissingCollaborator   = InvalidError("missing collaborator")
	ErrNoteNotFound          = NotFoundError("note not found")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrQueueClosed           = ProcessError("queue is closed")
	ErrQueueFull             = ProcessError("queue is full")
	ErrRecordTruncated       = RecordError("record is truncated")
	ErrSlotOutOfSequence     = RecordError("note slot out of sequence")
	ErrTooManyInputNotes     = LengthError("number of input notes exceeds the maximum")
	ErrTooManyNoteInputs     = LengthError("number of note inputs exceeds the maximum")
	ErrTransactionExists     = ExistsError("transaction already exists")
	ErrTransactionNotFound   = NotFoundError("transaction not found")
	ErrUnsupportedAssetCount = RecordError("unsupported asset count")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
