package core

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by Slot.Load when nothing has been saved yet (or the slot was cleared).
var ErrSlotEmpty = errors.New("storage slot is empty")

type (
	// Slot is a single durable key-value slot holding one serialized blob.
	Slot interface {
		Load(ctx context.Context) ([]byte, error)
		Save(ctx context.Context, blob []byte) error
		Clear(ctx context.Context) error
	}

	// SlotCloser is a Slot backed by a resource that must be released.
	SlotCloser interface {
		Slot
		Close() error
	}
)
