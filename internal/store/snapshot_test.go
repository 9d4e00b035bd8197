package store

import (
	"encoding/json"
	"errors"
)

// fakeSnapshotter is an in-memory stand-in for the Redis client.
type fakeSnapshotter struct {
	data     map[string][]byte
	failSave bool
}

func newFakeSnapshotter() *fakeSnapshotter {
	return &fakeSnapshotter{data: make(map[string][]byte)}
}

func (f *fakeSnapshotter) SaveSnapshot(key string, value interface{}) error {
	if f.failSave {
		return errors.New("save failed")
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeSnapshotter) LoadSnapshot(key string, dest interface{}) (bool, error) {
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}
