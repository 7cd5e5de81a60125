package encoding

import (
	"encoding/binary"
	"strconv"
)

// TLNum is a TLV Type or Length number
type TLNum uint64

// Nat is a TLV natural number
type Nat uint64

func (v TLNum) String() string {
	return "0x" + strconv.FormatUint(uint64(v), 16)
}

// EncodingLength is the size of v in the variable-length TL number format.
func (v TLNum) EncodingLength() int {
	switch x := uint64(v); {
	case x <= 0xfc:
		return 1
	case x <= 0xffff:
		return 3
	case x <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// EncodeInto writes v into buf and returns the number of bytes written.
// buf must hold at least v.EncodingLength() bytes.
func (v TLNum) EncodeInto(buf Buffer) int {
	switch x := uint64(v); {
	case x <= 0xfc:
		buf[0] = byte(x)
		return 1
	case x <= 0xffff:
		buf[0] = 0xfd
		binary.BigEndian.PutUint16(buf[1:], uint16(x))
		return 3
	case x <= 0xffffffff:
		buf[0] = 0xfe
		binary.BigEndian.PutUint32(buf[1:], uint32(x))
		return 5
	default:
		buf[0] = 0xff
		binary.BigEndian.PutUint64(buf[1:], uint64(x))
		return 9
	}
}

// EncodingLength is the shortest of 1, 2, 4 or 8 bytes that holds v.
func (v Nat) EncodingLength() int {
	switch x := uint64(v); {
	case x <= 0xff:
		return 1
	case x <= 0xffff:
		return 2
	case x <= 0xffffffff:
		return 4
	default:
		return 8
	}
}

func (v Nat) EncodeInto(buf Buffer) int {
	switch x := uint64(v); {
	case x <= 0xff:
		buf[0] = byte(x)
		return 1
	case x <= 0xffff:
		binary.BigEndian.PutUint16(buf, uint16(x))
		return 2
	case x <= 0xffffffff:
		binary.BigEndian.PutUint32(buf, uint32(x))
		return 4
	default:
		binary.BigEndian.PutUint64(buf, uint64(x))
		return 8
	}
}

func (v Nat) Bytes() []byte {
	buf := make([]byte, v.EncodingLength())
	v.EncodeInto(buf)
	return buf
}

// ParseNat parses a big-endian natural number of 1, 2, 4 or 8 bytes.
func ParseNat(buf Buffer) (val Nat, err error) {
	switch len(buf) {
	case 1:
		val = Nat(buf[0])
	case 2:
		val = Nat(binary.BigEndian.Uint16(buf))
	case 4:
		val = Nat(binary.BigEndian.Uint32(buf))
	case 8:
		val = Nat(binary.BigEndian.Uint64(buf))
	default:
		return 0, ErrFormat{"natural number length is not 1, 2, 4 or 8"}
	}
	return val, nil
}

// AppendTLV appends one TLV element to buf.
func AppendTLV(buf Buffer, typ TLNum, val []byte) Buffer {
	var hdr [18]byte
	n := typ.EncodeInto(hdr[:])
	n += TLNum(len(val)).EncodeInto(hdr[n:])
	buf = append(buf, hdr[:n]...)
	return append(buf, val...)
}

// AppendNat appends a TLV element holding a natural number.
func AppendNat(buf Buffer, typ TLNum, v Nat) Buffer {
	var val [8]byte
	n := v.EncodeInto(val[:])
	return AppendTLV(buf, typ, val[:n])
}
