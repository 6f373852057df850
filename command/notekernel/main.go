// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/notekernel/configuration"
	"github.com/bitmark-inc/notekernel/fault"
)

type metadata struct {
	config  *configuration.Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "notekernel"
	app.Usage = "transaction output note kernel"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "execute",
			Aliases:   []string{"run"},
			Usage:     "execute the configured transaction and archive its output notes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "dry-run, n",
					Usage: " do not archive the outputs",
				},
			},
			Action: runExecute,
		},
		{
			Name:   "list",
			Usage:  "list archived transactions",
			Flags:  []cli.Flag{},
			Action: runList,
		},
		{
			Name:      "show",
			Usage:     "show an archived transaction and its notes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*transaction `KEY`",
				},
			},
			Action: runShow,
		},
		{
			Name:      "tag",
			Usage:     "validate a note tag or derive one from an account",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tag, t",
					Value: "",
					Usage: "+note `TAG`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+target `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "type, y",
					Value: "public",
					Usage: " note `TYPE` [public|offchain|encrypted]",
				},
			},
			Action: runTag,
		},
		{
			Name:      "account",
			Usage:     "create or decode an account id",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "decode, d",
					Value: "",
					Usage: "+decode base58 `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "type, y",
					Value: "",
					Usage: "+account `TYPE` [regular|immutable|fungible|nonfungible]",
				},
				cli.Uint64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " low bits of the id `NUMBER`",
				},
				cli.BoolFlag{
					Name:  "on-chain, o",
					Usage: " account state is public",
				},
			},
			Action: runAccount,
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		// only some commands need the configuration file
		switch c.Args().Get(0) {
		case "execute", "run", "list", "show":
		default:
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}

		if m.verbose {
			fmt.Fprintf(m.e, "reading config file: %s\n", file)
		}

		m.config, err = configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		if err = logger.Initialise(m.config.Logger()); nil != err {
			return err
		}
		return fault.Initialise()
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && nil != m.config {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
