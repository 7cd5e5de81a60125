// Package encoding holds the TLV primitives used by the stream capture format.
package encoding

import "errors"

// Buffer is a buffer of bytes
type Buffer []byte

type ErrFormat struct {
	Msg string
}

func (e ErrFormat) Error() string {
	return e.Msg
}

var ErrBufferOverflow = errors.New("buffer overflow when parsing. One of the TLV Length is wrong")

type ErrUnexpectedType struct {
	Want TLNum
	Got  TLNum
}

func (e ErrUnexpectedType) Error() string {
	return "unexpected TLV type " + e.Got.String() + ", expected " + e.Want.String()
}
