// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/notekernel/configuration"
	"github.com/bitmark-inc/notekernel/fault"
)

const testConfiguration = `
local M = {}

M.data_directory = "."

M.database = {
    name = "test.leveldb",
}

M.publishing = {
    broadcast = {
        "inproc://notes",
    },
}

M.logging = {
    size = 4096,
    count = 2,
    console = false,
    levels = {
        DEFAULT = "info",
        kernel = "debug",
    },
}

M.transaction = {
    account = "26Uw2Vvq8Es1arAP",
    block_hash = "0000000000000004000000000000000300000000000000020000000000000001",
    block_number = 77,
    max_notes = 2,
    input_notes = {
        {
            nullifier = "0000000000000000000000000000000000000000000000000000000000000001",
            script_root = "0000000000000000000000000000000000000000000000000000000000000002",
        },
    },
    output_notes = {
        {
            asset = "8000000000001234000000000000000000000000000000000000000000000064",
            tag = "0x00000000",
            type = "public",
            recipient = "0000000000000000000000000000000000000000000000000000000000000009",
        },
        {
            asset = "8000000000001234000000000000000000000000000000000000000000000064",
            pay_to = os.getenv("TEST_PAY_TO") or "yzWKinsehtykDZHn",
            recall_height = 1000,
            serial = "000000000000000000000000000000000000000000000000000000000000000a",
        },
    },
}

return M
`

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "notekernel-configuration")
	require.Nil(t, err, "temp dir")

	fileName := filepath.Join(dir, "notekernel.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration")
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	options, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "get configuration")

	expectedDir, _ := filepath.Abs(dir)
	assert.Equal(t, filepath.Join(expectedDir, "data"), options.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(expectedDir, "data", "test.leveldb"), options.Database.Name, "database name")
	assert.Equal(t, filepath.Join(expectedDir, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, "notekernel.log", options.Logging.File, "default log file")
	assert.Equal(t, 4096, options.Logging.Size, "log size")
	assert.Equal(t, "debug", options.Logging.Levels["kernel"], "kernel level")
	assert.Equal(t, []string{"inproc://notes"}, options.Publishing.Broadcast, "broadcast")

	tx := options.Transaction
	assert.Equal(t, "26Uw2Vvq8Es1arAP", tx.Account, "account")
	assert.Equal(t, uint32(77), tx.BlockNumber, "block number")
	assert.Equal(t, uint64(2), tx.MaxNotes, "max notes")
	require.Equal(t, 1, len(tx.InputNotes), "input notes")
	require.Equal(t, 2, len(tx.OutputNotes), "output notes")
	assert.Equal(t, "public", tx.OutputNotes[0].Type, "type")
	assert.Equal(t, "yzWKinsehtykDZHn", tx.OutputNotes[1].PayTo, "pay to")
	assert.Equal(t, uint32(1000), tx.OutputNotes[1].RecallHeight, "recall height")
	assert.Equal(t, "", tx.OutputNotes[1].Recipient, "no recipient")

	fi, err := os.Stat(options.Database.Directory)
	require.Nil(t, err, "database directory created")
	assert.True(t, fi.IsDir(), "is directory")

	lc := options.Logger()
	assert.Equal(t, options.Logging.Directory, lc.Directory, "logger directory")
	assert.Equal(t, options.Logging.Count, lc.Count, "logger count")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		name string
		text string
	}{
		{"no data directory", "return { database = { name = \"x.leveldb\" } }"},
		{"database is a path", "return { data_directory = \".\", database = { name = \"a/b.leveldb\" } }"},
		{"missing directory", "return { data_directory = \"/nonexistent/notekernel\" }"},
		{"lua error", "return {"},
	}

	for _, item := range items {
		dir, fileName := writeConfiguration(t, item.text)
		_, err := configuration.GetConfiguration(fileName)
		assert.NotNil(t, err, item.name)
		os.RemoveAll(dir)
	}
}

func TestParseNotTable(t *testing.T) {
	dir, fileName := writeConfiguration(t, "return 42")
	defer os.RemoveAll(dir)

	var options configuration.Configuration
	err := configuration.ParseConfigurationFile(fileName, &options)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "number result")
}
