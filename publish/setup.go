// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/note"
)

// a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// Publisher - event sink writing to a PUB socket
type Publisher struct {
	sync.Mutex // to allow locking

	log    *logger.L
	socket *zmq.Socket
}

// New - bind a PUB socket to every broadcast endpoint
func New(log *logger.L, configuration *Configuration) (*Publisher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	log.Info("starting…")

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		log.Errorf("create socket error: %s", err)
		return nil, err
	}
	socket.SetLinger(0)

	for _, address := range configuration.Broadcast {
		if err := socket.Bind(address); nil != err {
			log.Errorf("bind: %q  error: %s", address, err)
			socket.Close()
			return nil, err
		}
		log.Infof("publish on: %q", address)
	}

	return &Publisher{
		log:    log,
		socket: socket,
	}, nil
}

// NoteCreated - publish a note creation event
func (p *Publisher) NoteCreated(event note.Created) error {
	p.Lock()
	defer p.Unlock()

	if nil == p.socket {
		return fault.ErrNotInitialised
	}

	topic, payload := Pack(event)

	_, err := p.socket.Send(topic, zmq.SNDMORE)
	if nil != err {
		p.log.Errorf("send topic error: %s", err)
		return err
	}
	_, err = p.socket.SendBytes(payload, 0)
	if nil != err {
		p.log.Errorf("send payload error: %s", err)
		return err
	}

	p.log.Debugf("published: slot: %d  payload: %x", event.Slot, payload)
	return nil
}

// Close - shut down the socket
func (p *Publisher) Close() error {
	p.Lock()
	defer p.Unlock()

	if nil == p.socket {
		return nil
	}
	err := p.socket.Close()
	p.socket = nil
	p.log.Info("stopped")
	return err
}
