package physical

import (
	"bytes"
	"encoding/json"

	"github.com/elliotchance/orderedmap/v3"
)

// Object is one decoded entity. Keys keep their insertion order, which is
// also the order they are marshalled in.
type Object struct {
	m *orderedmap.OrderedMap[string, any]
}

func NewObject() *Object {
	return &Object{m: orderedmap.NewOrderedMap[string, any]()}
}

// Set adds a key or replaces its value in place.
func (o *Object) Set(key string, v any) {
	o.m.Set(key, v)
}

func (o *Object) Get(key string) (any, bool) {
	return o.m.Get(key)
}

func (o *Object) Has(key string) bool {
	_, ok := o.m.Get(key)
	return ok
}

// Append adds v to the array stored under key, creating it on first use.
func (o *Object) Append(key string, v any) {
	arr, _ := o.Get(key)
	list, _ := arr.([]any)
	o.m.Set(key, append(list, v))
}

func (o *Object) Len() int {
	return o.m.Len()
}

func (o *Object) Keys() []string {
	keys := make([]string, 0, o.m.Len())
	for el := o.m.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

func (o *Object) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for el := o.m.Front(); el != nil; el = el.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(el.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(el.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
