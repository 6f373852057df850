// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/notekernel/configuration"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fixtures"
)

const testConfiguration = `
local M = {}

M.data_directory = "."

M.database = {
    name = "cli.leveldb",
}

M.logging = {
    console = false,
    levels = {
        DEFAULT = "critical",
    },
}

M.transaction = {
    account = "26Uw2Vvq8Es1arAP",
    block_hash = "0000000000000004000000000000000300000000000000020000000000000001",
    block_number = 12,
    output_notes = {
        {
            asset = "8000000000001234000000000000000000000000000000000000000000000064",
            tag = "0x00000000_00001234",
            type = "offchain",
            recipient = "0000000000000000000000000000000000000000000000000000000000000009",
        },
        {
            asset = "8000000000001234000000000000000000000000000000000000000000000064",
            pay_to = "yzWKinsehtykDZHn",
            serial = "000000000000000000000000000000000000000000000000000000000000000a",
        },
        {
            asset = "8000000000001234000000000000000000000000000000000000000000000064",
            pay_to = "yzWKinsehtykDZHn",
            recall_height = 100,
            serial = "000000000000000000000000000000000000000000000000000000000000000b",
        },
        {
            asset = "8000000000001234000000000000000000000000000000000000000000000064",
            requested = "00000000000000040000000000000003c0000000000056780000000000000001",
            serial = "000000000000000000000000000000000000000000000000000000000000000c",
        },
    },
}

return M
`

// fields of the command output checked by the tests
type testResult struct {
	Key     *digest.Word `json:"key"`
	Outputs struct {
		BlockNumber uint32            `json:"blockNumber"`
		Notes       []json.RawMessage `json:"notes"`
	} `json:"outputs"`
	Events []json.RawMessage `json:"events"`
	Swaps  []struct {
		Slot uint64 `json:"slot"`
	} `json:"swaps"`
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func readTestConfiguration(t *testing.T, text string) (string, *configuration.Configuration) {
	dir, err := ioutil.TempDir("", "notekernel-cli")
	require.Nil(t, err, "temp dir")

	fileName := filepath.Join(dir, "notekernel.conf")
	require.Nil(t, ioutil.WriteFile(fileName, []byte(text), 0600), "write configuration")

	config, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "get configuration")
	return dir, config
}

// a command context as the cli app would build it after Before
func newCommandContext(config *configuration.Configuration, out *bytes.Buffer, dryRun bool, key string) *cli.Context {
	app := cli.NewApp()
	app.Metadata = map[string]interface{}{
		"config": &metadata{
			config: config,
			e:      ioutil.Discard,
			w:      out,
		},
	}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Bool("dry-run", dryRun, "")
	set.String("key", key, "")
	return cli.NewContext(app, set, nil)
}

func TestExecuteDryRun(t *testing.T) {
	dir, config := readTestConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	out := &bytes.Buffer{}
	require.Nil(t, runExecute(newCommandContext(config, out, true, "")), "execute")

	var result testResult
	require.Nil(t, json.Unmarshal(out.Bytes(), &result), "decode output")
	assert.Nil(t, result.Key, "nothing archived")
	assert.Equal(t, uint32(12), result.Outputs.BlockNumber, "block number")
	assert.Equal(t, 4, len(result.Outputs.Notes), "notes")
	assert.Equal(t, 4, len(result.Events), "one event per note")
	require.Equal(t, 1, len(result.Swaps), "swaps")
	assert.Equal(t, uint64(3), result.Swaps[0].Slot, "swap slot")

	_, err := os.Stat(config.Database.Name)
	assert.True(t, os.IsNotExist(err), "no database created")
}

func TestExecuteListShow(t *testing.T) {
	dir, config := readTestConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	out := &bytes.Buffer{}
	require.Nil(t, runExecute(newCommandContext(config, out, false, "")), "execute")

	var result testResult
	require.Nil(t, json.Unmarshal(out.Bytes(), &result), "decode execute output")
	require.NotNil(t, result.Key, "archived")
	key := *result.Key

	out.Reset()
	require.Nil(t, runList(newCommandContext(config, out, false, "")), "list")

	var summaries []struct {
		Key       digest.Word `json:"key"`
		NoteCount uint64      `json:"noteCount"`
	}
	require.Nil(t, json.Unmarshal(out.Bytes(), &summaries), "decode list output")
	require.Equal(t, 1, len(summaries), "one transaction")
	assert.Equal(t, key, summaries[0].Key, "listed key")
	assert.Equal(t, uint64(4), summaries[0].NoteCount, "note count")

	out.Reset()
	require.Nil(t, runShow(newCommandContext(config, out, false, key.String())), "show")

	var shown struct {
		Transaction struct {
			Key digest.Word `json:"key"`
		} `json:"transaction"`
		Notes []json.RawMessage `json:"notes"`
	}
	require.Nil(t, json.Unmarshal(out.Bytes(), &shown), "decode show output")
	assert.Equal(t, key, shown.Transaction.Key, "shown key")
	assert.Equal(t, 4, len(shown.Notes), "shown notes")

	assert.Equal(t, ErrRequiredKey, runShow(newCommandContext(config, out, false, "")), "missing key")
}

func TestExecuteRejectedNote(t *testing.T) {
	text := `return {
    data_directory = ".",
    transaction = {
        account = "26Uw2Vvq8Es1arAP",
        output_notes = {
            {
                asset = "8000000000001234000000000000000000000000000000000000000000000064",
                tag = "0x40000000",
                recipient = "0000000000000000000000000000000000000000000000000000000000000009",
            },
        },
    },
}`
	dir, config := readTestConfiguration(t, text)
	defer os.RemoveAll(dir)

	err := runExecute(newCommandContext(config, &bytes.Buffer{}, true, ""))
	require.NotNil(t, err, "rejected")
	assert.Equal(t, "note tag prefix does not match note type  code: 0x00020003", err.Error(), "error with code")
}
