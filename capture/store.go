// Package capture stores recorded response streams by content id.
package capture

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/opendaylight/vtn-sub010/ipc"
)

// Store holds capture wires keyed by "<kind>/<hash>".
// Get returns a nil wire without error when the id is unknown.
type Store interface {
	Put(kind string, wire []byte) (id string, err error)
	Get(id string) ([]byte, error)
	List(kind string) ([]string, error)
	Remove(id string) error
	Close() error
}

// Id is the content address of a wire under a kind.
func Id(kind string, wire []byte) string {
	return fmt.Sprintf("%s/%016x", kind, xxhash.Sum64(wire))
}

// KindOf returns the kind part of an id.
func KindOf(id string) string {
	kind, _, _ := strings.Cut(id, "/")
	return kind
}

func validKind(kind string) error {
	if kind == "" || strings.Contains(kind, "/") {
		return fmt.Errorf("invalid capture kind %q", kind)
	}
	return nil
}

// PutStream encodes a stream and stores it.
func PutStream(s Store, kind string, stream ipc.Stream) (string, error) {
	return s.Put(kind, ipc.EncodeStream(stream))
}

// GetStream loads and parses a stored stream.
func GetStream(s Store, id string) (ipc.Stream, error) {
	wire, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if wire == nil {
		return nil, fmt.Errorf("capture %s not found", id)
	}
	return ipc.ParseStream(wire)
}
