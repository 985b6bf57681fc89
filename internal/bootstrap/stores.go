package bootstrap

import (
	"fmt"

	"github.com/derhamderham/diligence/config"
	"github.com/derhamderham/diligence/store"
	"github.com/derhamderham/diligence/store/taskstore"
)

// InitStores initializes the task store from the configured directory.
// Returns the concrete store, a generic store interface, and any error.
func InitStores() (*taskstore.TaskStore, store.Store, error) {
	taskStore, err := taskstore.NewTaskStore(config.GetTaskDir())
	if err != nil {
		return nil, nil, fmt.Errorf("initialize task store: %w", err)
	}
	return taskStore, taskStore, nil
}
