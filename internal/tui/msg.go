package tui

import "time"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTick is sent once a minute so the rendered times follow the wall clock.
type MsgTick struct {
	Time time.Time
}

func (MsgTick) sealed() {}

// MsgClearError is sent errorTimeout after an error is shown.
// Seq identifies the error it belongs to; a newer error is left alone.
type MsgClearError struct {
	Seq int
}

func (MsgClearError) sealed() {}
