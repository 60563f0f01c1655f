/*
Package modelstore manages stores where encoded models can be saved
under a name and loaded back. The root package's EncodeModel and
DecodeModel produce and consume the blobs; the stores never look
inside them.

The package provides an in-memory implementation; Redis and MongoDB
backends live in the redisstore and mongostore subpackages.
*/
package modelstore

import (
	"context"
	"fmt"
	"sync"
)

/*
Store is an interface to manage a store of named model blobs.

All its methods take a context that may allow cancelling the operation
if the implementation supports it.
*/
type Store interface {
	// Save stores the blob under the given name, overwriting any
	// previous model with that name.
	Save(ctx context.Context, name string, model []byte) error
	// Load returns the blob stored under the given name, or an error
	// if it does not exist or the store cannot be queried.
	Load(ctx context.Context, name string) ([]byte, error)
	// Delete removes the model with the given name. Deleting a name
	// that does not exist is not an error.
	Delete(ctx context.Context, name string) error
	// Close frees any resources the store holds.
	Close(ctx context.Context) error
}

type memoryStore struct {
	mu     sync.RWMutex
	models map[string][]byte
}

// NewMemory returns a Store backed by the process memory space
func NewMemory() Store {
	return &memoryStore{models: make(map[string][]byte)}
}

func (ms *memoryStore) Save(ctx context.Context, name string, model []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	blob := make([]byte, len(model))
	copy(blob, model)
	ms.mu.Lock()
	ms.models[name] = blob
	ms.mu.Unlock()
	return nil
}

func (ms *memoryStore) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ms.mu.RLock()
	blob, ok := ms.models[name]
	ms.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no model stored under %q", name)
	}
	return blob, nil
}

func (ms *memoryStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ms.mu.Lock()
	delete(ms.models, name)
	ms.mu.Unlock()
	return nil
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}
