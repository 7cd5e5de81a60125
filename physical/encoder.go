package physical

import (
	"fmt"
	"net/netip"
	"strconv"

	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/tidwall/gjson"
)

// Encoder builds request streams from JSON request bodies.
type Encoder struct {
	vendors VendorNames
}

func NewEncoder(vendors VendorNames) *Encoder {
	return &Encoder{vendors: vendors}
}

// Encode turns {"<singular>": {...}} into [key type, key struct, value struct].
// Identity fields are required. Other fields are Valid when present, ValidNoValue
// when given as "" and Invalid when absent.
func (e *Encoder) Encode(kind Kind, body []byte) (ipc.Stream, error) {
	ent, ok := entities[kind]
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %d", kind)
	}
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedValue{Field: "body", Value: string(body)}
	}
	root := gjson.GetBytes(body, ent.singular)
	if !root.IsObject() {
		return nil, ErrMissingField{Field: ent.singular}
	}

	key := ipc.NewStruct(ent.key.name)
	for _, f := range ent.key.fields {
		r := root.Get(f.key)
		if !r.Exists() {
			return nil, ErrMissingField{Field: f.key}
		}
		v, valid, err := e.value(f, r.String())
		if err != nil {
			return nil, err
		}
		key.Set(f.id, v, valid)
	}
	stream := ipc.Stream{ipc.Uint32(ent.keyType), key}

	if ent.base != nil {
		val := ipc.NewStruct(ent.base.name)
		if err := e.fields(val, root, ent.base.fields); err != nil {
			return nil, err
		}
		stream = append(stream, val)
	}
	return stream, nil
}

func (e *Encoder) fields(st *ipc.Struct, obj gjson.Result, fields []field) error {
	for _, f := range fields {
		if f.sub != nil {
			if err := e.fields(st, obj.Get(f.key), f.sub); err != nil {
				return err
			}
			continue
		}
		r := obj.Get(f.key)
		if !r.Exists() {
			st.Set(f.id, zero(f.kind), ipc.Invalid)
			continue
		}
		v, valid, err := e.value(f, r.String())
		if err != nil {
			return err
		}
		st.Set(f.id, v, valid)
	}
	return nil
}

func zero(kind ipc.Kind) ipc.Value {
	switch kind {
	case ipc.KindUint8:
		return ipc.Uint8(0)
	case ipc.KindUint16:
		return ipc.Uint16(0)
	case ipc.KindUint32:
		return ipc.Uint32(0)
	case ipc.KindUint64:
		return ipc.Uint64(0)
	case ipc.KindInt32:
		return ipc.Int32(0)
	case ipc.KindIPv4:
		return ipc.IPv4{}
	case ipc.KindIPv6:
		return ipc.IPv6{}
	case ipc.KindBytes:
		return ipc.Bytes(make([]byte, 6))
	}
	return ipc.String("")
}

func bits(kind ipc.Kind) int {
	switch kind {
	case ipc.KindUint8:
		return 8
	case ipc.KindUint16:
		return 16
	case ipc.KindUint32, ipc.KindInt32:
		return 32
	}
	return 64
}

func unsigned(kind ipc.Kind, n uint64) ipc.Value {
	switch kind {
	case ipc.KindUint8:
		return ipc.Uint8(n)
	case ipc.KindUint16:
		return ipc.Uint16(n)
	case ipc.KindUint32:
		return ipc.Uint32(n)
	}
	return ipc.Uint64(n)
}

// value converts one request string to a typed value.
func (e *Encoder) value(f field, raw string) (ipc.Value, ipc.Validity, error) {
	if f.format == fmtVlan {
		if raw == "" {
			return ipc.Uint16(vlanNone), ipc.Valid, nil
		}
		n, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return nil, ipc.Invalid, ErrMalformedNumber{Field: f.key, Value: raw, Err: err}
		}
		return ipc.Uint16(n), ipc.Valid, nil
	}
	if raw == "" {
		return zero(f.kind), ipc.ValidNoValue, nil
	}

	switch f.format {
	case fmtEnum:
		name := raw
		if f.vendor {
			name = e.vendors.Canonical(raw)
		}
		n, ok := f.enum.Parse(name)
		if !ok {
			return nil, ipc.Invalid, ErrMalformedValue{Field: f.key, Value: raw}
		}
		return unsigned(f.kind, n), ipc.Valid, nil
	case fmtMac:
		b, err := ParseMac(raw)
		if err != nil {
			return nil, ipc.Invalid, err
		}
		return ipc.Bytes(b[:]), ipc.Valid, nil
	case fmtHex:
		n, err := strconv.ParseUint(raw, 0, bits(f.kind))
		if err != nil {
			return nil, ipc.Invalid, ErrMalformedNumber{Field: f.key, Value: raw, Err: err}
		}
		return unsigned(f.kind, n), ipc.Valid, nil
	}

	switch f.kind {
	case ipc.KindUint8, ipc.KindUint16, ipc.KindUint32, ipc.KindUint64:
		n, err := strconv.ParseUint(raw, 10, bits(f.kind))
		if err != nil {
			return nil, ipc.Invalid, ErrMalformedNumber{Field: f.key, Value: raw, Err: err}
		}
		return unsigned(f.kind, n), ipc.Valid, nil
	case ipc.KindInt32:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, ipc.Invalid, ErrMalformedNumber{Field: f.key, Value: raw, Err: err}
		}
		return ipc.Int32(n), ipc.Valid, nil
	case ipc.KindIPv4:
		a, err := netip.ParseAddr(raw)
		if err != nil || !a.Is4() {
			return nil, ipc.Invalid, ErrMalformedAddress{Value: raw}
		}
		return ipc.IPv4(a.As4()), ipc.Valid, nil
	case ipc.KindIPv6:
		a, err := netip.ParseAddr(raw)
		if err != nil || !a.Is6() {
			return nil, ipc.Invalid, ErrMalformedAddress{Value: raw}
		}
		return ipc.IPv6(a.As16()), ipc.Valid, nil
	}
	return ipc.String(raw), ipc.Valid, nil
}
