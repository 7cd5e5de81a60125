package physical

import (
	"fmt"

	"github.com/opendaylight/vtn-sub010/ipc"
)

// ErrFieldNotEmittable is returned when a field is written without passing the
// validity gate. It signals a decoder or schema bug, not bad input.
type ErrFieldNotEmittable struct {
	Key      string
	Validity ipc.Validity
}

func (e ErrFieldNotEmittable) Error() string {
	return fmt.Sprintf("field %s is %s and cannot be emitted", e.Key, e.Validity)
}

type ErrMalformedAddress struct {
	Value string
}

func (e ErrMalformedAddress) Error() string {
	return fmt.Sprintf("malformed address: %q", e.Value)
}

type ErrMalformedNumber struct {
	Field string
	Value string
	Err   error
}

func (e ErrMalformedNumber) Error() string {
	return fmt.Sprintf("malformed number for %s: %q: %v", e.Field, e.Value, e.Err)
}

func (e ErrMalformedNumber) Unwrap() error {
	return e.Err
}

type ErrMalformedValue struct {
	Field string
	Value string
}

func (e ErrMalformedValue) Error() string {
	return fmt.Sprintf("invalid value for %s: %q", e.Field, e.Value)
}

type ErrMissingField struct {
	Field string
}

func (e ErrMissingField) Error() string {
	return fmt.Sprintf("required field %s is missing", e.Field)
}

// ErrUnknownTag is a variant tag the decoder has no payload layout for.
// The rest of the stream cannot be interpreted, so it is a protocol error.
type ErrUnknownTag struct {
	Stream string
	Tag    uint64
}

func (e ErrUnknownTag) Error() string {
	return fmt.Sprintf("unknown %s tag %d", e.Stream, e.Tag)
}

func (e ErrUnknownTag) Unwrap() error {
	return ipc.ErrProtocol
}

// ErrMissingInner is a state struct without its embedded base struct.
type ErrMissingInner struct {
	Struct string
	Inner  string
}

func (e ErrMissingInner) Error() string {
	return fmt.Sprintf("struct %s has no inner %s", e.Struct, e.Inner)
}

func (e ErrMissingInner) Unwrap() error {
	return ipc.ErrProtocol
}
