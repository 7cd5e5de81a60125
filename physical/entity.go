package physical

import (
	"strings"

	"github.com/opendaylight/vtn-sub010/ipc"
)

// Kind is a physical entity kind.
type Kind uint8

const (
	KindController Kind = iota + 1
	KindDomain
	KindBoundary
	KindSwitch
	KindPort
	KindPortNeighbor
	KindLink
	KindLogicalPort
	KindLogicalPortMember
	KindLogicalPortNeighbor
	KindLogicalPortBoundary
	KindPathPolicy
	KindPathPolicyLinkWeight
	KindPathPolicyDisabledSwitch
	KindControllerDataFlow
	KindDataFlow
)

var KindList = map[Kind]string{
	KindController:               "controller",
	KindDomain:                   "domain",
	KindBoundary:                 "boundary",
	KindSwitch:                   "switch",
	KindPort:                     "port",
	KindPortNeighbor:             "port-neighbor",
	KindLink:                     "link",
	KindLogicalPort:              "logical-port",
	KindLogicalPortMember:        "logical-member-port",
	KindLogicalPortNeighbor:      "logical-port-neighbor",
	KindLogicalPortBoundary:      "logical-port-boundary",
	KindPathPolicy:               "path-policy",
	KindPathPolicyLinkWeight:     "path-policy-link-weight",
	KindPathPolicyDisabledSwitch: "path-policy-disabled-switch",
	KindControllerDataFlow:       "controller-dataflow",
	KindDataFlow:                 "dataflow",
}

func (k Kind) String() string {
	if s, ok := KindList[k]; ok {
		return s
	}
	return "unknown"
}

func ParseKind(s string) (Kind, error) {
	for k, v := range KindList {
		if strings.EqualFold(v, s) {
			return k, nil
		}
	}
	return 0, ErrMalformedValue{Field: "kind", Value: s}
}

// Key type ordinals, the first record of every instance.
const (
	KeyTypeController         uint32 = 0x200
	KeyTypeSwitch             uint32 = 0x201
	KeyTypePort               uint32 = 0x202
	KeyTypeLink               uint32 = 0x203
	KeyTypeDomain             uint32 = 0x204
	KeyTypeLogicalPort        uint32 = 0x205
	KeyTypeLogicalMemberPort  uint32 = 0x206
	KeyTypeBoundary           uint32 = 0x207
	KeyTypeDataFlow           uint32 = 0x208
	KeyTypeControllerDataFlow uint32 = 0x209
	KeyTypePathPolicy         uint32 = 0x20a
	KeyTypeLinkWeight         uint32 = 0x20b
	KeyTypeDisabledSwitch     uint32 = 0x20c
)

type schema struct {
	name   string
	fields []field
}

// entity describes how one kind is laid out in a response stream.
type entity struct {
	kind     Kind
	singular string
	plural   string
	keyType  uint32
	key      schema
	base     *schema
	// state and inner are set for kinds whose state struct embeds the base
	// struct in the named inner slot.
	state *schema
	inner string
	// stats is an extra value struct present in Detail+State responses.
	stats    *schema
	statsKey string
	// compose derives the output object from the identity fields.
	compose func(ids *Object) *Object
	// custom replaces the table driven instance decoder.
	custom func(s *session, cur *ipc.Cursor) (*Object, error)
}

func (e *entity) name(p Presentation) string {
	if p == Show {
		return e.singular
	}
	return e.plural
}

// valueSlots is the number of value structs following the key struct.
func (e *entity) valueSlots(ctx Context) int {
	if e.base == nil {
		return 0
	}
	if e.stats != nil && ctx.Operation == OpDetail && ctx.Target == TargetState {
		return 2
	}
	return 1
}

// decodeInstance consumes one [key type, key, values...] group.
func (e *entity) decodeInstance(s *session, cur *ipc.Cursor) (*Object, error) {
	if e.custom != nil {
		return e.custom(s, cur)
	}
	if _, err := cur.NextUint(); err != nil {
		return nil, err
	}
	key, err := cur.NextStruct()
	if err != nil {
		return nil, err
	}

	obj := NewObject()
	if err := s.identity(obj, key, e.key.fields); err != nil {
		return nil, err
	}
	if e.compose != nil {
		obj = e.compose(obj)
	}

	if !s.ctx.Detailed() {
		return obj, cur.Skip(e.valueSlots(s.ctx))
	}
	if e.base == nil {
		return obj, nil
	}

	val, err := cur.NextStruct()
	if err != nil {
		return nil, err
	}
	if e.state != nil && s.ctx.Target == TargetState {
		base, ok := val.Inner(e.inner)
		if !ok {
			return nil, ErrMissingInner{Struct: val.Name(), Inner: e.inner}
		}
		if err := s.fields(obj, base, e.base.fields); err != nil {
			return nil, err
		}
		if err := s.fields(obj, val, e.state.fields); err != nil {
			return nil, err
		}
	} else if err := s.fields(obj, val, e.base.fields); err != nil {
		return nil, err
	}

	if e.valueSlots(s.ctx) > 1 {
		stats, err := cur.NextStruct()
		if err != nil {
			return nil, err
		}
		nested := NewObject()
		if err := s.fields(nested, stats, e.stats.fields); err != nil {
			return nil, err
		}
		if nested.Len() > 0 {
			obj.Set(e.statsKey, nested)
		}
	}
	return obj, nil
}
