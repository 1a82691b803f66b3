package badgerslot

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gpatracker/core"
)

// Slot stores the blob under one key of a Badger database.
type Slot struct {
	db  *badger.DB
	key []byte
}

var _ core.SlotCloser = (*Slot)(nil)

// Open opens (or creates) the Badger database in dir. An empty dir keeps the database in memory.
func Open(dir, key string) (*Slot, error) {
	if key == "" {
		return nil, errors.New("badger slot: empty key")
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "badger slot: opening database")
	}
	return &Slot{db: db, key: []byte(key)}, nil
}

func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var blob []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key)
		if err != nil {
			return err
		}
		blob, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, core.ErrSlotEmpty
		}
		return nil, errors.Wrap(err, "badger slot: reading")
	}
	if len(blob) == 0 {
		return nil, core.ErrSlotEmpty
	}
	return blob, nil
}

func (s *Slot) Save(ctx context.Context, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key, blob)
	})
	return errors.Wrap(err, "badger slot: writing")
}

func (s *Slot) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.key)
	})
	return errors.Wrap(err, "badger slot: deleting")
}

func (s *Slot) Close() error {
	return s.db.Close()
}
