package capture

import (
	"slices"
	"strings"
	"sync"
)

type MemoryStore struct {
	mutex sync.RWMutex
	wires map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{wires: make(map[string][]byte)}
}

func (s *MemoryStore) Put(kind string, wire []byte) (string, error) {
	if err := validKind(kind); err != nil {
		return "", err
	}
	id := Id(kind, wire)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.wires[id] = slices.Clone(wire)
	return id, nil
}

func (s *MemoryStore) Get(id string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return slices.Clone(s.wires[id]), nil
}

func (s *MemoryStore) List(kind string) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := []string{}
	for id := range s.wires {
		if kind == "" || strings.HasPrefix(id, kind+"/") {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *MemoryStore) Remove(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.wires, id)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
