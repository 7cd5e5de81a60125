package ipc

import (
	"encoding/binary"
	"fmt"

	enc "github.com/opendaylight/vtn-sub010/std/encoding"
)

// TLV type numbers of the capture format.
const (
	TypeStream   enc.TLNum = 0x80
	TypeName     enc.TLNum = 0x90
	TypeField    enc.TLNum = 0x91
	TypeValidity enc.TLNum = 0x92
	TypeInner    enc.TLNum = 0x93
)

// recordType maps a kind to its TLV type: 0x81 (uint8) .. 0x8a (struct).
func recordType(k Kind) enc.TLNum {
	return TypeStream + enc.TLNum(k)
}

// EncodeStream serializes a stream into the capture format.
func EncodeStream(s Stream) []byte {
	var body enc.Buffer
	for _, v := range s {
		body = appendRecord(body, v)
	}
	return enc.AppendTLV(nil, TypeStream, body)
}

func appendRecord(buf enc.Buffer, v Value) enc.Buffer {
	switch x := v.(type) {
	case Uint8:
		return enc.AppendNat(buf, recordType(KindUint8), enc.Nat(x))
	case Uint16:
		return enc.AppendNat(buf, recordType(KindUint16), enc.Nat(x))
	case Uint32:
		return enc.AppendNat(buf, recordType(KindUint32), enc.Nat(x))
	case Uint64:
		return enc.AppendNat(buf, recordType(KindUint64), enc.Nat(x))
	case Int32:
		return enc.AppendTLV(buf, recordType(KindInt32), binary.BigEndian.AppendUint32(nil, uint32(x)))
	case IPv4:
		return enc.AppendTLV(buf, recordType(KindIPv4), x[:])
	case IPv6:
		return enc.AppendTLV(buf, recordType(KindIPv6), x[:])
	case String:
		return enc.AppendTLV(buf, recordType(KindString), []byte(x))
	case Bytes:
		return enc.AppendTLV(buf, recordType(KindBytes), x)
	case *Struct:
		return enc.AppendTLV(buf, recordType(KindStruct), encodeStruct(x))
	}
	panic(fmt.Sprintf("ipc: unknown value type %T", v))
}

func encodeStruct(s *Struct) enc.Buffer {
	body := enc.AppendTLV(nil, TypeName, []byte(s.name))
	for _, f := range s.fields {
		fb := enc.AppendTLV(nil, TypeName, []byte(f.Name))
		fb = enc.AppendNat(fb, TypeValidity, enc.Nat(f.Valid))
		if f.Value != nil {
			fb = appendRecord(fb, f.Value)
		}
		body = enc.AppendTLV(body, TypeField, fb)
	}
	for _, in := range s.inner {
		ib := enc.AppendTLV(nil, TypeName, []byte(in.Name))
		ib = enc.AppendTLV(ib, recordType(KindStruct), encodeStruct(in.Struct))
		body = enc.AppendTLV(body, TypeInner, ib)
	}
	return body
}

// ParseStream parses a capture produced by EncodeStream.
func ParseStream(buf []byte) (Stream, error) {
	r := enc.NewBufferView(buf)
	body, err := r.Expect(TypeStream)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	if !r.IsEOF() {
		return nil, enc.ErrFormat{Msg: "capture: trailing bytes after stream"}
	}

	stream := Stream{}
	br := enc.NewBufferView(body)
	for !br.IsEOF() {
		typ, val, err := br.ReadTLV()
		if err != nil {
			return nil, fmt.Errorf("capture: record %d: %w", len(stream), err)
		}
		v, err := parseRecord(typ, val)
		if err != nil {
			return nil, fmt.Errorf("capture: record %d: %w", len(stream), err)
		}
		stream = append(stream, v)
	}
	return stream, nil
}

func parseNat(val enc.Buffer, max uint64) (uint64, error) {
	n, err := enc.ParseNat(val)
	if err != nil {
		return 0, err
	}
	if uint64(n) > max {
		return 0, enc.ErrFormat{Msg: fmt.Sprintf("value %d out of range", n)}
	}
	return uint64(n), nil
}

func parseRecord(typ enc.TLNum, val enc.Buffer) (Value, error) {
	if typ <= TypeStream || typ > recordType(KindStruct) {
		return nil, enc.ErrFormat{Msg: fmt.Sprintf("unknown record type %s", typ)}
	}
	switch Kind(typ - TypeStream) {
	case KindUint8:
		n, err := parseNat(val, 0xff)
		return Uint8(n), err
	case KindUint16:
		n, err := parseNat(val, 0xffff)
		return Uint16(n), err
	case KindUint32:
		n, err := parseNat(val, 0xffffffff)
		return Uint32(n), err
	case KindUint64:
		n, err := parseNat(val, ^uint64(0))
		return Uint64(n), err
	case KindInt32:
		if len(val) != 4 {
			return nil, enc.ErrFormat{Msg: "int32 must be 4 bytes"}
		}
		return Int32(int32(binary.BigEndian.Uint32(val))), nil
	case KindIPv4:
		if len(val) != 4 {
			return nil, enc.ErrFormat{Msg: "ipv4 address must be 4 bytes"}
		}
		var a IPv4
		copy(a[:], val)
		return a, nil
	case KindIPv6:
		if len(val) != 16 {
			return nil, enc.ErrFormat{Msg: "ipv6 address must be 16 bytes"}
		}
		var a IPv6
		copy(a[:], val)
		return a, nil
	case KindString:
		return String(val), nil
	case KindBytes:
		return Bytes(append([]byte{}, val...)), nil
	case KindStruct:
		return parseStruct(val)
	}
	return nil, enc.ErrFormat{Msg: fmt.Sprintf("unknown record type %s", typ)}
}

func parseStruct(buf enc.Buffer) (*Struct, error) {
	r := enc.NewBufferView(buf)
	name, err := r.Expect(TypeName)
	if err != nil {
		return nil, err
	}
	s := NewStruct(string(name))

	for !r.IsEOF() {
		typ, val, err := r.ReadTLV()
		if err != nil {
			return nil, err
		}
		switch typ {
		case TypeField:
			if err := parseField(s, val); err != nil {
				return nil, fmt.Errorf("%s: %w", s.name, err)
			}
		case TypeInner:
			ir := enc.NewBufferView(val)
			iname, err := ir.Expect(TypeName)
			if err != nil {
				return nil, err
			}
			ibody, err := ir.Expect(recordType(KindStruct))
			if err != nil {
				return nil, err
			}
			in, err := parseStruct(ibody)
			if err != nil {
				return nil, err
			}
			s.SetInner(string(iname), in)
		default:
			return nil, enc.ErrFormat{Msg: fmt.Sprintf("%s: unexpected element %s", s.name, typ)}
		}
	}
	return s, nil
}

func parseField(s *Struct, buf enc.Buffer) error {
	r := enc.NewBufferView(buf)
	name, err := r.Expect(TypeName)
	if err != nil {
		return err
	}
	vb, err := r.Expect(TypeValidity)
	if err != nil {
		return err
	}
	valid, err := parseNat(vb, uint64(NotSupported))
	if err != nil {
		return err
	}

	var v Value
	if !r.IsEOF() {
		typ, val, err := r.ReadTLV()
		if err != nil {
			return err
		}
		if v, err = parseRecord(typ, val); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	s.Set(string(name), v, Validity(valid))
	return nil
}
