package encoding

import "io"

// BufferView is a parsing view over a contiguous Buffer.
// It is a value type; copying it forks the read position.
type BufferView struct {
	buf Buffer
	pos int
}

func NewBufferView(buf Buffer) BufferView {
	return BufferView{buf: buf}
}

func (r *BufferView) IsEOF() bool {
	return r.pos >= len(r.buf)
}

func (r *BufferView) Pos() int {
	return r.pos
}

func (r *BufferView) Length() int {
	return len(r.buf)
}

func (r *BufferView) ReadByte() (byte, error) {
	if r.IsEOF() {
		return 0, io.EOF
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadTLNum reads a variable-length TL number.
func (r *BufferView) ReadTLNum() (val TLNum, err error) {
	var x byte
	if x, err = r.ReadByte(); err != nil {
		return
	}
	l := 1
	switch {
	case x <= 0xfc:
		val = TLNum(x)
		return
	case x == 0xfd:
		l = 2
	case x == 0xfe:
		l = 4
	case x == 0xff:
		l = 8
	}
	val = 0
	for i := 0; i < l; i++ {
		if x, err = r.ReadByte(); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return
		}
		val = TLNum(val<<8) | TLNum(x)
	}
	return
}

// ReadBuf returns the next l bytes without copy.
func (r *BufferView) ReadBuf(l int) (Buffer, error) {
	if l < 0 || l > len(r.buf)-r.pos {
		return nil, ErrBufferOverflow
	}
	p := r.pos
	r.pos += l
	return r.buf[p:r.pos], nil
}

func (r *BufferView) Skip(n int) error {
	_, err := r.ReadBuf(n)
	return err
}

// ReadTLV reads the type and value of the next TLV element.
func (r *BufferView) ReadTLV() (typ TLNum, val Buffer, err error) {
	if typ, err = r.ReadTLNum(); err != nil {
		return
	}
	l, err := r.ReadTLNum()
	if err != nil {
		return
	}
	val, err = r.ReadBuf(int(l))
	return
}

// Expect reads the next TLV element and requires its type to be typ.
func (r *BufferView) Expect(typ TLNum) (Buffer, error) {
	got, val, err := r.ReadTLV()
	if err != nil {
		return nil, err
	}
	if got != typ {
		return nil, ErrUnexpectedType{Want: typ, Got: got}
	}
	return val, nil
}

// Delegate returns a view of the next l bytes and advances past them.
func (r *BufferView) Delegate(l int) (BufferView, error) {
	sub, err := r.ReadBuf(l)
	if err != nil {
		return BufferView{}, err
	}
	return NewBufferView(sub), nil
}
