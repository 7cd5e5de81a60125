package ipc

import (
	"errors"
	"fmt"
)

// ErrProtocol is the class of structural errors: the stream does not match the
// layout the decoder expects. Use errors.Is(err, ipc.ErrProtocol).
var ErrProtocol = errors.New("protocol error")

type ErrStreamUnderrun struct {
	Pos int
	Len int
}

func (e ErrStreamUnderrun) Error() string {
	return fmt.Sprintf("stream underrun: record %d requested, stream has %d", e.Pos, e.Len)
}

func (e ErrStreamUnderrun) Unwrap() error {
	return ErrProtocol
}

type ErrRecordType struct {
	Pos  int
	Want string
	Got  Kind
}

func (e ErrRecordType) Error() string {
	return fmt.Sprintf("record %d: expected %s but got %s", e.Pos, e.Want, e.Got)
}

func (e ErrRecordType) Unwrap() error {
	return ErrProtocol
}

type ErrFieldType struct {
	Struct string
	Field  string
	Want   Kind
	Got    Kind
}

func (e ErrFieldType) Error() string {
	return fmt.Sprintf("field %s.%s: expected %s but got %s", e.Struct, e.Field, e.Want, e.Got)
}

func (e ErrFieldType) Unwrap() error {
	return ErrProtocol
}
