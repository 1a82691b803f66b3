package slot

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/gpatracker/core"
	badgerslot "github.com/trezcool/gpatracker/storage/slot/badger"
	fileslot "github.com/trezcool/gpatracker/storage/slot/file"
	inmemslot "github.com/trezcool/gpatracker/storage/slot/inmem"
)

// Open returns the storage slot selected by conf.Storage.Driver.
// Relative paths are resolved against conf.WorkDir.
func Open(conf *core.Config) (core.SlotCloser, error) {
	switch conf.Storage.Driver {
	case core.StorageMemory:
		return inmemslot.New(), nil
	case core.StorageFile:
		s, err := fileslot.Open(resolve(conf, conf.Storage.Path))
		if err != nil {
			return nil, err
		}
		return s, nil
	case core.StorageBadger:
		s, err := badgerslot.Open(resolve(conf, conf.Storage.Path), conf.Storage.Key)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}

func resolve(conf *core.Config, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(conf.WorkDir, path)
}
