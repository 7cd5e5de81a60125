package physical

import (
	"strconv"

	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/physical/vocab"
)

type format uint8

const (
	fmtText format = iota
	fmtHex
	fmtMac
	fmtVlan
	fmtEnum
)

// vlanNone is the vlan id meaning "untagged"; it renders as the empty string.
const vlanNone = 65535

// field maps one struct field to one output key.
// A field with sub set is a nested output object built from the same struct.
type field struct {
	id     string
	key    string
	kind   ipc.Kind
	format format
	enum   *vocab.Table
	vendor bool
	sub    []field
}

func str(id, key string) field {
	return field{id: id, key: key, kind: ipc.KindString}
}

func num(id, key string, kind ipc.Kind) field {
	return field{id: id, key: key, kind: kind}
}

func addr(id, key string, kind ipc.Kind) field {
	return field{id: id, key: key, kind: kind}
}

func hexnum(id, key string, kind ipc.Kind) field {
	return field{id: id, key: key, kind: kind, format: fmtHex}
}

func mac(id, key string) field {
	return field{id: id, key: key, kind: ipc.KindBytes, format: fmtMac}
}

func vlan(id, key string) field {
	return field{id: id, key: key, kind: ipc.KindUint16, format: fmtVlan}
}

func enum(id, key string, kind ipc.Kind, t *vocab.Table) field {
	return field{id: id, key: key, kind: kind, format: fmtEnum, enum: t}
}

// vendorEnum is an enum whose text is further mapped through VendorNames.
func vendorEnum(id, key string, kind ipc.Kind, t *vocab.Table) field {
	f := enum(id, key, kind, t)
	f.vendor = true
	return f
}

func group(key string, fields ...field) field {
	return field{key: key, sub: fields}
}

// render converts a value to its output text. ok is false when the value
// has no text form, which only happens for unmapped enum ordinals.
func (s *session) render(f field, v ipc.Value) (text string, ok bool, err error) {
	if v == nil {
		return "", true, nil
	}
	switch f.format {
	case fmtHex:
		n, _ := ipc.AsUint(v)
		return "0x" + strconv.FormatUint(n, 16), true, nil
	case fmtMac:
		b := v.(ipc.Bytes)
		if len(b) != 6 {
			return "", false, ErrMalformedAddress{Value: b.String()}
		}
		return FormatMac([6]byte(b)), true, nil
	case fmtVlan:
		n, _ := ipc.AsUint(v)
		if n == vlanNone {
			return "", true, nil
		}
		return strconv.FormatUint(n, 10), true, nil
	case fmtEnum:
		n, _ := ipc.AsUint(v)
		name, found := f.enum.Lookup(n)
		if !found {
			s.debug("Unmapped ordinal, field omitted", "key", f.key, "table", f.enum, "ordinal", n)
			return "", false, nil
		}
		if f.vendor {
			name = s.vendors.Display(name)
		}
		return name, true, nil
	}
	return v.String(), true, nil
}

// emit writes one gated field into obj.
func (s *session) emit(obj *Object, st *ipc.Struct, f field) error {
	v, valid, err := st.Read(f.id, f.kind)
	if err != nil {
		return err
	}
	if !ShouldEmit(valid) {
		return nil
	}
	if valid == ipc.ValidNoValue {
		return RequireEmit(obj, valid, f.key, "")
	}
	text, ok, err := s.render(f, v)
	if err != nil || !ok {
		return err
	}
	return RequireEmit(obj, valid, f.key, text)
}

// fields writes every emittable field of the table into obj.
func (s *session) fields(obj *Object, st *ipc.Struct, fields []field) error {
	for _, f := range fields {
		if f.sub != nil {
			nested := NewObject()
			if err := s.fields(nested, st, f.sub); err != nil {
				return err
			}
			if nested.Len() > 0 {
				obj.Set(f.key, nested)
			}
			continue
		}
		if err := s.emit(obj, st, f); err != nil {
			return err
		}
	}
	return nil
}

// identity writes key fields without consulting validity.
func (s *session) identity(obj *Object, st *ipc.Struct, fields []field) error {
	for _, f := range fields {
		v, _, err := st.Read(f.id, f.kind)
		if err != nil {
			return err
		}
		text, ok, err := s.render(f, v)
		if err != nil {
			return err
		}
		if ok {
			obj.Set(f.key, text)
		}
	}
	return nil
}
