// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/notekernel/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrRecordOne   = fault.RecordError("record one")
	ErrRecordTwo   = fault.RecordError("record two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false},
		{ErrLengthTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, false, true},
		{ErrRecordTwo, false, false, false, false, false, true},
		{fault.ErrOutputNotesOverflow, false, false, true, false, false, false},
		{fault.ErrTagHighBitsSet, false, true, false, false, false, false},
		{fault.ErrTransactionAborted, false, false, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// the codes are part of the protocol
func TestCodes(t *testing.T) {
	codeList := []struct {
		err  error
		code uint32
	}{
		{fault.ErrOutputNotesOverflow, 0x00020001},
		{fault.ErrInvalidNoteType, 0x00020002},
		{fault.ErrTagPrefixMismatch, 0x00020003},
		{fault.ErrTagHighBitsSet, 0x00020004},
		{fault.ErrAssetInvalid, 0x00020005},
		{fault.ErrTransactionAborted, 0x00020006},
	}

	seen := make(map[uint32]error)
	for i, item := range codeList {
		code, ok := fault.Code(item.err)
		if !ok {
			t.Errorf("%d: no code for: %v", i, item.err)
			continue
		}
		if code != item.code {
			t.Errorf("%d: code: 0x%08x  expected: 0x%08x", i, code, item.code)
		}
		if previous, ok := seen[code]; ok {
			t.Errorf("%d: code: 0x%08x shared by: %v and %v", i, code, previous, item.err)
		}
		seen[code] = item.err
	}

	if _, ok := fault.Code(fault.ErrNoteNotFound); ok {
		t.Error("non-kernel error has a code")
	}
	if _, ok := fault.Code(errors.New("invalid note type")); ok {
		t.Error("string match must not produce a code")
	}
	if _, ok := fault.Code(nil); ok {
		t.Error("nil error has a code")
	}
}
