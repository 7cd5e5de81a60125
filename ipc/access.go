package ipc

import (
	"strconv"
)

// Lookup returns a field's value and validity. A field that is not part of
// the struct reads as Invalid with a nil value; Lookup never fails.
func (s *Struct) Lookup(id string) (Value, Validity) {
	i, ok := s.index[id]
	if !ok {
		return nil, Invalid
	}
	f := s.fields[i]
	return f.Value, f.Valid
}

// Read is Lookup with a schema check: a present value must be of the given kind.
func (s *Struct) Read(id string, kind Kind) (Value, Validity, error) {
	v, valid := s.Lookup(id)
	if v == nil {
		return nil, valid, nil
	}
	if v.Kind() != kind {
		return nil, valid, ErrFieldType{Struct: s.name, Field: id, Want: kind, Got: v.Kind()}
	}
	return v, valid, nil
}

// Text reads a scalar field in its canonical text form.
func (s *Struct) Text(id string) (string, Validity, error) {
	v, valid := s.Lookup(id)
	if v == nil {
		return "", valid, nil
	}
	if v.Kind() == KindStruct {
		return "", valid, ErrFieldType{Struct: s.name, Field: id, Want: KindString, Got: KindStruct}
	}
	return v.String(), valid, nil
}

// Uint reads an unsigned integer field of any width.
func (s *Struct) Uint(id string) (uint64, Validity, error) {
	v, valid := s.Lookup(id)
	if v == nil {
		return 0, valid, nil
	}
	n, ok := AsUint(v)
	if !ok {
		return 0, valid, ErrFieldType{Struct: s.name, Field: id, Want: KindUint64, Got: v.Kind()}
	}
	return n, valid, nil
}

// Hex reads an unsigned integer field as 0x-prefixed lowercase hex.
func (s *Struct) Hex(id string) (string, Validity, error) {
	n, valid, err := s.Uint(id)
	if err != nil {
		return "", valid, err
	}
	return "0x" + strconv.FormatUint(n, 16), valid, nil
}

// Bytes reads a uint8 array field.
func (s *Struct) Bytes(id string) ([]byte, Validity, error) {
	v, valid, err := s.Read(id, KindBytes)
	if err != nil || v == nil {
		return nil, valid, err
	}
	return v.(Bytes), valid, nil
}
