package ipc

// Cursor is the read position over a Stream. It is owned by exactly one
// decode call and is the only way decoders touch the stream.
type Cursor struct {
	stream Stream
	pos    int
}

func NewCursor(stream Stream) *Cursor {
	return &Cursor{stream: stream}
}

// Next returns the record at the current position and advances by one.
func (c *Cursor) Next() (Value, error) {
	if c.pos >= len(c.stream) {
		return nil, ErrStreamUnderrun{Pos: c.pos, Len: len(c.stream)}
	}
	v := c.stream[c.pos]
	c.pos++
	return v, nil
}

// NextStruct is Next for records that must be structs.
func (c *Cursor) NextStruct() (*Struct, error) {
	pos := c.pos
	v, err := c.Next()
	if err != nil {
		return nil, err
	}
	s, ok := v.(*Struct)
	if !ok {
		return nil, ErrRecordType{Pos: pos, Want: "struct", Got: v.Kind()}
	}
	return s, nil
}

// NextUint is Next for records that must be unsigned integer scalars.
func (c *Cursor) NextUint() (uint64, error) {
	pos := c.pos
	v, err := c.Next()
	if err != nil {
		return 0, err
	}
	n, ok := AsUint(v)
	if !ok {
		return 0, ErrRecordType{Pos: pos, Want: "unsigned integer", Got: v.Kind()}
	}
	return n, nil
}

// Skip advances by n records without reading them.
func (c *Cursor) Skip(n int) error {
	if n < 0 || n > len(c.stream)-c.pos {
		return ErrStreamUnderrun{Pos: c.pos + n, Len: len(c.stream)}
	}
	c.pos += n
	return nil
}

func (c *Cursor) Remaining() int {
	return len(c.stream) - c.pos
}

func (c *Cursor) Pos() int {
	return c.pos
}

func (c *Cursor) Len() int {
	return len(c.stream)
}
