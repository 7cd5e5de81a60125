package physical

import "github.com/opendaylight/vtn-sub010/ipc"

// ShouldEmit reports whether a field with this validity appears in the output.
func ShouldEmit(v ipc.Validity) bool {
	return v == ipc.Valid || v == ipc.ValidNoValue
}

// emitValue is the value written for an emittable field: the value itself
// when valid, the empty string when explicitly empty.
func emitValue(v ipc.Validity, key string, value any) (any, error) {
	switch v {
	case ipc.Valid:
		return value, nil
	case ipc.ValidNoValue:
		return "", nil
	}
	return nil, ErrFieldNotEmittable{Key: key, Validity: v}
}

// RequireEmit writes a field whose presence was already decided.
func RequireEmit(obj *Object, v ipc.Validity, key string, value any) error {
	out, err := emitValue(v, key, value)
	if err != nil {
		return err
	}
	obj.Set(key, out)
	return nil
}

// requireAppend is RequireEmit for array buckets.
func requireAppend(obj *Object, v ipc.Validity, key string, value any) error {
	out, err := emitValue(v, key, value)
	if err != nil {
		return err
	}
	obj.Append(key, out)
	return nil
}
