// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish broadcasts note creation events on a ZeroMQ PUB
// socket.
//
// Each event is a two part message: the topic "note" followed by a
// fixed width little endian payload
//
//	event code (4) | aux (8) | type (1) | sender (8) | tag (8) | slot (8)
package publish
