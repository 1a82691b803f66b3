package fileslot

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/gpatracker/core"
)

// Slot stores the blob in a single file. Saves replace the file atomically (temp file + rename).
type Slot struct {
	mutex sync.Mutex
	path  string
}

var _ core.SlotCloser = (*Slot)(nil)

// Open returns a Slot writing to path, creating its directory if needed.
func Open(path string) (*Slot, error) {
	if path == "" {
		return nil, errors.New("file slot: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "file slot: creating directory")
	}
	return &Slot{path: path}, nil
}

func (s *Slot) Path() string {
	return s.path
}

func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	blob, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrSlotEmpty
		}
		return nil, errors.Wrap(err, "file slot: reading")
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
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return errors.Wrap(err, "file slot: creating temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }() // no-op once renamed

	if _, err = tmp.Write(blob); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "file slot: writing")
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "file slot: syncing")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "file slot: closing")
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "file slot: replacing")
	}
	return nil
}

func (s *Slot) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "file slot: removing")
	}
	return nil
}

func (s *Slot) Close() error {
	return nil
}
