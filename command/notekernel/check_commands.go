// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/asset"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/note"
)

var (
	ErrRequiredAccountType = fault.InvalidError("account type is required")
	ErrRequiredConfigFile  = fault.InvalidError("config file is required")
	ErrRequiredKey         = fault.InvalidError("transaction key is required")
	ErrRequiredRecipient   = fault.InvalidError("recipient is required")
	ErrRequiredSerial      = fault.InvalidError("serial number is required")
	ErrRequiredTagOrTarget = fault.InvalidError("one of tag or account is required")
	ErrUnknownAccountType  = fault.InvalidError("unknown account type")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	if _, err := os.Stat(file); nil != err {
		return "", err
	}
	return file, nil
}

// big endian hex, the form words are printed in
func parseWord(s string) (digest.Word, error) {
	var w digest.Word
	if _, err := fmt.Sscan(strings.TrimPrefix(strings.TrimSpace(s), "0x"), &w); nil != err {
		return digest.Zero, err
	}
	return w, nil
}

func parseAsset(s string) (asset.Asset, error) {
	w, err := parseWord(s)
	if nil != err {
		return asset.Asset{}, err
	}
	return asset.Asset(w), nil
}

func parseRecipient(s string) (digest.Word, error) {
	if "" == s {
		return digest.Zero, ErrRequiredRecipient
	}
	return parseWord(s)
}

func parseSerial(s string) (digest.Word, error) {
	if "" == s {
		return digest.Zero, ErrRequiredSerial
	}
	return parseWord(s)
}

// an empty tag is the zero tag
func parseTag(s string) (note.Tag, error) {
	if "" == s {
		return 0, nil
	}
	return note.ParseTag(s)
}

// an empty type is a public note
func parseNoteType(s string) (note.NoteType, error) {
	if "" == s {
		return note.Public, nil
	}
	var t note.NoteType
	err := t.UnmarshalText([]byte(s))
	return t, err
}

func parseAccountType(s string) (account.Type, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, ErrRequiredAccountType
	case "regular", "updatable":
		return account.RegularUpdatable, nil
	case "immutable":
		return account.RegularImmutable, nil
	case "fungible":
		return account.FungibleFaucet, nil
	case "nonfungible", "non-fungible":
		return account.NonFungibleFaucet, nil
	default:
		return 0, ErrUnknownAccountType
	}
}
