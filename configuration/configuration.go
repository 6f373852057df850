// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/notekernel/publish"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "notekernel.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "notekernel.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

type LoggingType struct {
	Directory string            `gluamapper:"directory" json:"directory"`
	File      string            `gluamapper:"file" json:"file"`
	Size      int               `gluamapper:"size" json:"size"`
	Count     int               `gluamapper:"count" json:"count"`
	Console   bool              `gluamapper:"console" json:"console"`
	Levels    map[string]string `gluamapper:"levels" json:"levels"`
}

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type InputNoteType struct {
	Nullifier  string `gluamapper:"nullifier" json:"nullifier"`
	ScriptRoot string `gluamapper:"script_root" json:"script_root"`
}

// OutputNoteType - one note to create
//
// a note with pay_to is a pay to id note (recallable when recall_height
// is set), a note with requested is a swap; both are built from serial
// and ignore tag, type and recipient
type OutputNoteType struct {
	Asset        string `gluamapper:"asset" json:"asset"`
	Tag          string `gluamapper:"tag" json:"tag"`
	Type         string `gluamapper:"type" json:"type"`
	Recipient    string `gluamapper:"recipient" json:"recipient"`
	PayTo        string `gluamapper:"pay_to" json:"pay_to"`
	RecallHeight uint32 `gluamapper:"recall_height" json:"recall_height"`
	Requested    string `gluamapper:"requested" json:"requested"`
	Serial       string `gluamapper:"serial" json:"serial"`
}

type TransactionType struct {
	Account     string           `gluamapper:"account" json:"account"`
	BlockHash   string           `gluamapper:"block_hash" json:"block_hash"`
	BlockNumber uint32           `gluamapper:"block_number" json:"block_number"`
	MaxNotes    uint64           `gluamapper:"max_notes" json:"max_notes"`
	InputNotes  []InputNoteType  `gluamapper:"input_notes" json:"input_notes"`
	OutputNotes []OutputNoteType `gluamapper:"output_notes" json:"output_notes"`
}

type Configuration struct {
	DataDirectory string                `gluamapper:"data_directory" json:"data_directory"`
	Database      DatabaseType          `gluamapper:"database" json:"database"`
	Publishing    publish.Configuration `gluamapper:"publishing" json:"publishing"`
	Logging       LoggingType           `gluamapper:"logging" json:"logging"`
	Transaction   TransactionType       `gluamapper:"transaction" json:"transaction"`
}

// Logger - the logging section in the form the logger expects
func (c *Configuration) Logger() logger.Configuration {
	return logger.Configuration{
		Directory: c.Logging.Directory,
		File:      c.Logging.File,
		Size:      c.Logging.Size,
		Count:     c.Logging.Count,
		Console:   c.Logging.Console,
		Levels:    c.Logging.Levels,
	}
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Logging: LoggingType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}
	options.Database.Name = ensureAbsolute(options.Database.Directory, options.Database.Name)

	return options, nil
}

// prefix a relative path with a directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
