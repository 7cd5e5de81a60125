package ipc

import (
	"strings"
)

// Field is one struct member together with its validity flag.
type Field struct {
	Name  string
	Value Value
	Valid Validity
}

// Inner is a named nested struct, e.g. the base struct embedded in a state struct.
type Inner struct {
	Name   string
	Struct *Struct
}

// Struct is a keyed, fixed-schema record.
type Struct struct {
	name   string
	fields []Field
	index  map[string]int
	inner  []Inner
}

func NewStruct(name string) *Struct {
	return &Struct{
		name:  name,
		index: make(map[string]int),
	}
}

func (*Struct) Kind() Kind { return KindStruct }
func (*Struct) isValue()   {}

// Name is the schema name, e.g. "val_switch_st".
func (s *Struct) Name() string {
	return s.name
}

// Set adds or replaces a field. It returns s for chaining.
func (s *Struct) Set(name string, v Value, valid Validity) *Struct {
	if i, ok := s.index[name]; ok {
		s.fields[i] = Field{Name: name, Value: v, Valid: valid}
		return s
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, Field{Name: name, Value: v, Valid: valid})
	return s
}

// SetValid is Set with Valid.
func (s *Struct) SetValid(name string, v Value) *Struct {
	return s.Set(name, v, Valid)
}

// SetInner attaches a nested struct under name. A nil struct is ignored.
// It returns s for chaining.
func (s *Struct) SetInner(name string, in *Struct) *Struct {
	if in == nil {
		return s
	}
	for i := range s.inner {
		if s.inner[i].Name == name {
			s.inner[i].Struct = in
			return s
		}
	}
	s.inner = append(s.inner, Inner{Name: name, Struct: in})
	return s
}

// Inner returns the nested struct stored under name.
func (s *Struct) Inner(name string) (*Struct, bool) {
	for _, in := range s.inner {
		if in.Name == name {
			return in.Struct, in.Struct != nil
		}
	}
	return nil, false
}

// Fields returns the fields in schema order. The slice must not be modified.
func (s *Struct) Fields() []Field {
	return s.fields
}

// Inners returns the nested structs in insertion order.
func (s *Struct) Inners() []Inner {
	return s.inner
}

func (s *Struct) String() string {
	sb := strings.Builder{}
	sb.WriteString(s.name)
	sb.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		if f.Value != nil {
			sb.WriteString(f.Value.String())
		}
		if f.Valid != Valid {
			sb.WriteString("(" + f.Valid.String() + ")")
		}
	}
	for _, in := range s.inner {
		sb.WriteString(" " + in.Name + ":" + in.Struct.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
