package physical

import (
	"fmt"

	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/std/log"
)

// CountSlot is the stream position of the count record in a count response:
// after the key type and the key struct.
const CountSlot = 2

// VendorNames maps canonical controller type names to display names.
type VendorNames map[string]string

func (v VendorNames) Display(canonical string) string {
	if d, ok := v[canonical]; ok {
		return d
	}
	return canonical
}

func (v VendorNames) Canonical(display string) string {
	for c, d := range v {
		if d == display {
			return c
		}
	}
	return display
}

// Decoder turns response streams into ordered objects.
// It holds no per-call state and is safe for concurrent use.
type Decoder struct {
	vendors VendorNames
	log     *log.Logger
}

func NewDecoder(vendors VendorNames, logger *log.Logger) *Decoder {
	if logger == nil {
		logger = log.Default()
	}
	return &Decoder{vendors: vendors, log: logger}
}

func (d *Decoder) String() string {
	return "physical-decoder"
}

// session is the state of one Decode call.
type session struct {
	*Decoder
	ctx Context
}

func (s *session) debug(msg string, v ...any) {
	s.log.Debug(s.Decoder, msg, v...)
}

func (s *session) trace(msg string, v ...any) {
	s.log.Trace(s.Decoder, msg, v...)
}

// Decode assembles the response for one entity kind.
//
// Count responses yield {name: {"count": N}}. Show yields the first instance
// under the singular name, or an empty object for an empty stream. List yields
// every instance under the plural name. Data-flow responses always use the
// "dataflows" array shape.
func (d *Decoder) Decode(kind Kind, stream ipc.Stream, ctx Context) (*Object, error) {
	e, ok := entities[kind]
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %d", kind)
	}
	s := &session{Decoder: d, ctx: ctx}
	cur := ipc.NewCursor(stream)
	name := e.name(ctx.Presentation)

	if ctx.Operation == OpCount {
		return s.count(cur, name)
	}
	if kind == KindDataFlow {
		return s.dataFlows(cur)
	}

	root := NewObject()
	if ctx.Presentation == Show {
		inst := NewObject()
		if cur.Remaining() > 0 {
			var err error
			if inst, err = e.decodeInstance(s, cur); err != nil {
				return nil, fmt.Errorf("decode %s: %w", kind, err)
			}
		}
		root.Set(name, inst)
		return root, nil
	}

	list := []any{}
	for cur.Remaining() > 0 {
		inst, err := e.decodeInstance(s, cur)
		if err != nil {
			return nil, fmt.Errorf("decode %s #%d: %w", kind, len(list), err)
		}
		list = append(list, inst)
	}
	s.trace("Decoded list", "kind", kind, "count", len(list), "context", ctx)
	root.Set(name, list)
	return root, nil
}

func (s *session) count(cur *ipc.Cursor, name string) (*Object, error) {
	if err := cur.Skip(CountSlot); err != nil {
		return nil, err
	}
	n, err := cur.NextUint()
	if err != nil {
		return nil, err
	}
	s.trace("Decoded count", "name", name, "count", n)
	obj := NewObject()
	obj.Set("count", n)
	root := NewObject()
	root.Set(name, obj)
	return root, nil
}
