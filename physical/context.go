package physical

import (
	"strings"

	"github.com/opendaylight/vtn-sub010/std/types/optional"
	"github.com/tidwall/gjson"
)

type Operation uint8

const (
	OpNormal Operation = iota
	OpCount
	OpDetail
)

var OperationList = map[Operation]string{
	OpNormal: "normal",
	OpCount:  "count",
	OpDetail: "detail",
}

func (o Operation) String() string {
	if s, ok := OperationList[o]; ok {
		return s
	}
	return "unknown"
}

func ParseOperation(s string) (Operation, error) {
	for k, v := range OperationList {
		if strings.EqualFold(v, s) {
			return k, nil
		}
	}
	return 0, ErrMalformedValue{Field: "op", Value: s}
}

// Presentation selects a single instance (Show) or all of them (List).
type Presentation uint8

const (
	Show Presentation = iota
	List
)

func (p Presentation) String() string {
	if p == Show {
		return "show"
	}
	return "list"
}

// Target is the controller database the response was read from.
type Target uint8

const (
	TargetState Target = iota
	TargetRunning
	TargetStartup
)

var TargetList = map[Target]string{
	TargetState:   "state",
	TargetRunning: "running",
	TargetStartup: "startup",
}

func (t Target) String() string {
	if s, ok := TargetList[t]; ok {
		return s
	}
	return "unknown"
}

func ParseTarget(s string) (Target, error) {
	for k, v := range TargetList {
		if strings.EqualFold(v, s) {
			return k, nil
		}
	}
	return 0, ErrMalformedValue{Field: "targetdb", Value: s}
}

// Context is the request side information that shapes a decode.
type Context struct {
	Operation    Operation
	Presentation Presentation
	Target       Target
}

func NewContext(op optional.Optional[Operation], p Presentation, target optional.Optional[Target]) Context {
	return Context{
		Operation:    op.GetOr(OpNormal),
		Presentation: p,
		Target:       target.GetOr(TargetState),
	}
}

// Detailed reports whether value structs are decoded rather than skipped.
func (c Context) Detailed() bool {
	return c.Presentation == Show || c.Operation == OpDetail
}

func (c Context) String() string {
	return c.Presentation.String() + "/" + c.Operation.String() + "/" + c.Target.String()
}

// ParseContext reads "op" and "targetdb" from a request body. Either may be
// absent; an empty body is the default context.
func ParseContext(body []byte, p Presentation) (Context, error) {
	var op optional.Optional[Operation]
	var target optional.Optional[Target]

	if len(body) > 0 {
		if !gjson.ValidBytes(body) {
			return Context{}, ErrMalformedValue{Field: "body", Value: string(body)}
		}
		if r := gjson.GetBytes(body, "op"); r.Exists() {
			o, err := ParseOperation(r.String())
			if err != nil {
				return Context{}, err
			}
			op.Set(o)
		}
		if r := gjson.GetBytes(body, "targetdb"); r.Exists() {
			t, err := ParseTarget(r.String())
			if err != nil {
				return Context{}, err
			}
			target.Set(t)
		}
	}

	return NewContext(op, p, target), nil
}
