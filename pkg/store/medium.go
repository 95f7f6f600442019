package store

import (
	"context"
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Medium is the flat string-keyed durable medium everything persists through.
// There are no transactions and no queries; one key holds one serialized value.
type Medium interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, value []byte) error
	Erase(key string) error
	Keys(ctx context.Context) ([]string, error)
}

// NewDiskv returns the default medium, one file per key under basePath.
func NewDiskv(basePath string) Medium {
	return &diskvMedium{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

type diskvMedium struct {
	d *diskv.Diskv
}

func (m *diskvMedium) Read(key string) ([]byte, bool, error) {
	val, err := m.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (m *diskvMedium) Write(key string, value []byte) error {
	return m.d.Write(key, value)
}

func (m *diskvMedium) Erase(key string) error {
	if err := m.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (m *diskvMedium) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range m.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	return keys, ctx.Err()
}
