package inmemslot

import (
	"context"
	"sync"

	"github.com/trezcool/gpatracker/core"
)

// Slot keeps the blob in memory. Used in tests & with the "memory" storage driver.
type Slot struct {
	mutex sync.RWMutex
	blob  []byte
	saves int
}

var _ core.SlotCloser = (*Slot)(nil)

func New(blob ...[]byte) *Slot {
	s := &Slot{}
	if len(blob) > 0 && blob[0] != nil {
		s.blob = append([]byte(nil), blob[0]...)
	}
	return s
}

func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.blob == nil {
		return nil, core.ErrSlotEmpty
	}
	return append([]byte(nil), s.blob...), nil
}

func (s *Slot) Save(ctx context.Context, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.blob = append(make([]byte, 0, len(blob)), blob...)
	s.saves++
	return nil
}

func (s *Slot) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.blob = nil
	return nil
}

// Saves returns the number of successful Save calls.
func (s *Slot) Saves() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.saves
}

func (s *Slot) Close() error {
	return nil
}
