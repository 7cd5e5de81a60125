// Package ipc models the typed records of a controller response stream.
//
// A Stream is a flat sequence of Values. A Value is either a scalar or a
// Struct, a fixed-schema set of named fields each carrying its own Validity.
package ipc

import (
	"encoding/hex"
	"net/netip"
	"strconv"
)

// Kind is the discriminant of a Value.
type Kind uint8

const (
	KindUint8 Kind = iota + 1
	KindUint16
	KindUint32
	KindUint64
	KindInt32
	KindIPv4
	KindIPv6
	KindString
	KindBytes
	KindStruct
)

var KindList = map[Kind]string{
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindUint32: "uint32",
	KindUint64: "uint64",
	KindInt32:  "int32",
	KindIPv4:   "ipv4",
	KindIPv6:   "ipv6",
	KindString: "string",
	KindBytes:  "bytes",
	KindStruct: "struct",
}

func (k Kind) String() string {
	if s, ok := KindList[k]; ok {
		return s
	}
	return "unknown"
}

// Value is one typed record. The set of implementations is closed.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

type Uint8 uint8
type Uint16 uint16
type Uint32 uint32
type Uint64 uint64
type Int32 int32
type IPv4 [4]byte
type IPv6 [16]byte
type String string

// Bytes is a fixed-size uint8 array field, e.g. a MAC address.
type Bytes []byte

func (Uint8) Kind() Kind  { return KindUint8 }
func (Uint16) Kind() Kind { return KindUint16 }
func (Uint32) Kind() Kind { return KindUint32 }
func (Uint64) Kind() Kind { return KindUint64 }
func (Int32) Kind() Kind  { return KindInt32 }
func (IPv4) Kind() Kind   { return KindIPv4 }
func (IPv6) Kind() Kind   { return KindIPv6 }
func (String) Kind() Kind { return KindString }
func (Bytes) Kind() Kind  { return KindBytes }

func (v Uint8) String() string  { return strconv.FormatUint(uint64(v), 10) }
func (v Uint16) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Uint32) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Uint64) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Int32) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v IPv4) String() string   { return netip.AddrFrom4(v).String() }
func (v IPv6) String() string   { return netip.AddrFrom16(v).String() }
func (v String) String() string { return string(v) }
func (v Bytes) String() string  { return hex.EncodeToString(v) }

func (Uint8) isValue()  {}
func (Uint16) isValue() {}
func (Uint32) isValue() {}
func (Uint64) isValue() {}
func (Int32) isValue()  {}
func (IPv4) isValue()   {}
func (IPv6) isValue()   {}
func (String) isValue() {}
func (Bytes) isValue()  {}

// AsUint returns the magnitude of an unsigned integer value.
func AsUint(v Value) (uint64, bool) {
	switch x := v.(type) {
	case Uint8:
		return uint64(x), true
	case Uint16:
		return uint64(x), true
	case Uint32:
		return uint64(x), true
	case Uint64:
		return uint64(x), true
	}
	return 0, false
}

// Stream is the response of one request, in wire order.
type Stream []Value
