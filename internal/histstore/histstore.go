// Package histstore persists scored review runs across qams invocations.
package histstore

import (
	"fmt"
	"sync"

	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/schema"
)

// StoreManagerImpl manages the HistoryStore instance.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	history      contract.HistoryStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetHistoryStore returns the history store.
func (mgr *StoreManagerImpl) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}

// Manager is the global store manager instance.
var Manager = &StoreManagerImpl{}

// InitStore initializes the global history store with the given backend.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	store, err := NewHistoryStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}

	Manager.Lock()
	defer Manager.Unlock()
	if Manager.history != nil {
		_ = Manager.history.Close()
	}
	Manager.history = store
	return nil
}

// CloseStore closes the global history store if initialized.
func CloseStore() error {
	Manager.Lock()
	defer Manager.Unlock()
	if Manager.history == nil {
		return nil
	}
	err := Manager.history.Close()
	Manager.history = nil
	return err
}
