package capture

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/opendaylight/vtn-sub010/std/log"
)

// Store implementation using badger
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(path string) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(badgerLogger{}))
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) String() string {
	return "capture-badger"
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) Put(kind string, wire []byte) (string, error) {
	if err := validKind(kind); err != nil {
		return "", err
	}
	id := Id(kind, wire)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(id), wire)
	})
	if err != nil {
		return "", err
	}
	log.Debug(s, "Stored capture", "id", id, "size", len(wire))
	return id, nil
}

func (s *BadgerStore) Get(id string) (wire []byte, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		wire, err = item.ValueCopy(nil)
		return err
	})
	return
}

func (s *BadgerStore) List(kind string) ([]string, error) {
	prefix := []byte{}
	if kind != "" {
		prefix = []byte(kind + "/")
	}

	ids := []string{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // keys only
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return ids, err
}

func (s *BadgerStore) Remove(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(id))
	})
}

// badgerLogger routes badger's own messages into the process logger.
type badgerLogger struct{}

func (badgerLogger) String() string {
	return "badger"
}

func (l badgerLogger) Errorf(format string, v ...any) {
	log.Error(l, fmt.Sprintf(format, v...))
}

func (l badgerLogger) Warningf(format string, v ...any) {
	log.Warn(l, fmt.Sprintf(format, v...))
}

func (l badgerLogger) Infof(format string, v ...any) {
	log.Debug(l, fmt.Sprintf(format, v...))
}

func (l badgerLogger) Debugf(format string, v ...any) {
	log.Trace(l, fmt.Sprintf(format, v...))
}
