// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/asset"
	"github.com/bitmark-inc/notekernel/commitment"
	"github.com/bitmark-inc/notekernel/configuration"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/kernel"
	"github.com/bitmark-inc/notekernel/messagebus"
	"github.com/bitmark-inc/notekernel/note"
	"github.com/bitmark-inc/notekernel/publish"
	"github.com/bitmark-inc/notekernel/storage"
)

type swapResult struct {
	Slot          uint64      `json:"slot"`
	PaybackSerial digest.Word `json:"paybackSerial"`
}

type executeResult struct {
	Key     *digest.Word    `json:"key,omitempty"`
	Outputs *kernel.Outputs `json:"outputs"`
	Events  []note.Created  `json:"events"`
	Swaps   []swapResult    `json:"swaps,omitempty"`
}

func runExecute(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	tx := &m.config.Transaction

	log := logger.New("main")
	log.Info("execute transaction")

	parameters, err := makeParameters(tx)
	if nil != err {
		return err
	}

	queue := messagebus.New(len(tx.OutputNotes))
	sinks := kernel.Sinks{
		kernel.LogSink{Log: logger.New("events")},
		queue,
	}

	if 0 != len(m.config.Publishing.Broadcast) {
		publisher, err := publish.New(logger.New("publish"), &m.config.Publishing)
		if nil != err {
			return err
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
	}
	parameters.Sink = sinks

	ctx, err := kernel.New(logger.New("kernel"), *parameters)
	if nil != err {
		return err
	}

	swaps := make([]swapResult, 0)
	for i, output := range tx.OutputNotes {
		slot, err := createNote(ctx, &output, &swaps)
		if nil != err {
			log.Errorf("output note[%d] error: %s", i, err)
			return withCode(err)
		}
		if m.verbose {
			fmt.Fprintf(m.e, "output note[%d] slot: %d\n", i, slot)
		}
	}

	// every note was created so the context cannot be aborted
	outputs, err := ctx.Outputs()
	fault.PanicIfError("outputs", err)

	queue.Release()
	result := executeResult{
		Outputs: outputs,
		Events:  make([]note.Created, 0, len(outputs.Notes)),
		Swaps:   swaps,
	}
	for message := range queue.Chan() {
		if event, ok := message.Item.(note.Created); ok {
			result.Events = append(result.Events, event)
		}
	}

	if !c.Bool("dry-run") {
		store, err := storage.Open(logger.New("storage"), m.config.Database.Name, storage.ReadWrite)
		if nil != err {
			return err
		}
		defer store.Close()

		key, err := store.Archive(outputs)
		if nil != err {
			return err
		}
		result.Key = &key
		log.Infof("archived: %s", key)
	}

	return printJson(m.w, result)
}

// build the context parameters from the transaction section
func makeParameters(tx *configuration.TransactionType) (*kernel.Parameters, error) {

	sender, err := account.IdFromBase58(tx.Account)
	if nil != err {
		return nil, fmt.Errorf("account: %q  error: %s", tx.Account, err)
	}

	blockHash := digest.Zero
	if "" != tx.BlockHash {
		blockHash, err = parseWord(tx.BlockHash)
		if nil != err {
			return nil, fmt.Errorf("block hash: %q  error: %s", tx.BlockHash, err)
		}
	}

	inputs := make([]commitment.InputNote, len(tx.InputNotes))
	for i, input := range tx.InputNotes {
		if inputs[i].Nullifier, err = parseWord(input.Nullifier); nil != err {
			return nil, fmt.Errorf("input note[%d] nullifier error: %s", i, err)
		}
		if inputs[i].ScriptRoot, err = parseWord(input.ScriptRoot); nil != err {
			return nil, fmt.Errorf("input note[%d] script root error: %s", i, err)
		}
	}

	return &kernel.Parameters{
		Assets:      asset.StandardValidator{},
		Identity:    account.Fixed(sender),
		Committer:   commitment.Sequential{},
		BlockHash:   blockHash,
		BlockNumber: tx.BlockNumber,
		InputNotes:  inputs,
		MaxNotes:    tx.MaxNotes,
	}, nil
}

func createNote(ctx *kernel.Context, output *configuration.OutputNoteType, swaps *[]swapResult) (uint64, error) {

	a, err := parseAsset(output.Asset)
	if nil != err {
		return 0, err
	}

	switch {
	case "" != output.Requested:
		requested, err := parseAsset(output.Requested)
		if nil != err {
			return 0, err
		}
		serial, err := parseSerial(output.Serial)
		if nil != err {
			return 0, err
		}
		slot, paybackSerial, err := ctx.CreateSwap(a, requested, serial)
		if nil != err {
			return 0, err
		}
		*swaps = append(*swaps, swapResult{Slot: slot, PaybackSerial: paybackSerial})
		return slot, nil

	case "" != output.PayTo:
		target, err := account.IdFromBase58(output.PayTo)
		if nil != err {
			return 0, err
		}
		serial, err := parseSerial(output.Serial)
		if nil != err {
			return 0, err
		}
		if 0 != output.RecallHeight {
			return ctx.CreatePayToIdRecall(a, target, output.RecallHeight, serial)
		}
		return ctx.CreatePayToId(a, target, serial)
	}

	recipient, err := parseRecipient(output.Recipient)
	if nil != err {
		return 0, err
	}
	tag, err := parseTag(output.Tag)
	if nil != err {
		return 0, err
	}
	noteType, err := parseNoteType(output.Type)
	if nil != err {
		return 0, err
	}
	return ctx.CreateNote(a, tag, noteType, recipient)
}

// attach the protocol code to kernel errors
func withCode(err error) error {
	if code, ok := fault.Code(err); ok {
		return fmt.Errorf("%s  code: 0x%08x", err, code)
	}
	return err
}
