// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/notekernel/account"
)

type accountResult struct {
	Account account.Id `json:"account"`
	Value   string     `json:"value"`
	Type    string     `json:"type"`
	Faucet  bool       `json:"faucet"`
	OnChain bool       `json:"onChain"`
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var id account.Id
	if encoded := c.String("decode"); "" != encoded {
		decoded, err := account.IdFromBase58(encoded)
		if nil != err {
			return err
		}
		id = decoded
	} else {
		accountType, err := parseAccountType(c.String("type"))
		if nil != err {
			return err
		}
		id, err = account.NewId(accountType, c.Bool("on-chain"), c.Uint64("seed"))
		if nil != err {
			return err
		}
	}

	return printJson(m.w, accountResult{
		Account: id,
		Value:   fmt.Sprintf("0x%016x", uint64(id)),
		Type:    id.Type().String(),
		Faucet:  id.IsFaucet(),
		OnChain: id.IsOnChain(),
	})
}
