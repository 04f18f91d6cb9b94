package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/utils"
)

// ColumnsSettingKey is the settings key the column visibility JSON lives under.
const ColumnsSettingKey = "upcomingServicesColumns"

// KeyValueStore persists small string values. ok is false when the key is absent.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// ColumnStore guards the upcoming services column preference.
// At least one column is always visible.
type ColumnStore struct {
	Store     KeyValueStore
	RequestID string
}

// VisibleColumns returns the persisted config, or the default when it is
// missing, unreadable or hides every column.
func (s ColumnStore) VisibleColumns() models.ColumnVisibility {
	if s.Store == nil {
		return models.DefaultColumnVisibility()
	}
	raw, ok, err := s.Store.Get(ColumnsSettingKey)
	if err != nil {
		utils.LogFailure(s.RequestID, "columns", "load", err)
		return models.DefaultColumnVisibility()
	}
	if !ok || raw == "" {
		return models.DefaultColumnVisibility()
	}
	var cols models.ColumnVisibility
	if err := json.Unmarshal([]byte(raw), &cols); err != nil {
		utils.LogFailure(s.RequestID, "columns", "decode", err)
		return models.DefaultColumnVisibility()
	}
	if cols.VisibleCount() == 0 {
		utils.LogFailure(s.RequestID, "columns", "decode", errors.New("stored config hides every column"))
		return models.DefaultColumnVisibility()
	}
	return cols
}

// ToggleColumn flips a column and returns the resulting config. ok is false,
// and the stored config is left as it was, when the name is unknown or the flip
// would hide the last visible column. A failed save is logged and the toggled
// config is still returned.
func (s ColumnStore) ToggleColumn(name string) (models.ColumnVisibility, bool) {
	cols := s.VisibleColumns()
	field := cols.Field(name)
	if field == nil {
		utils.LogFailure(s.RequestID, "columns", "toggle", fmt.Errorf("unknown column %q", name))
		return cols, false
	}
	*field = !*field
	if cols.VisibleCount() == 0 {
		*field = true
		utils.LogEvent(s.RequestID, "columns", "toggle", "rejected: last visible column "+name)
		return cols, false
	}
	s.save(cols)
	return cols, true
}

// ResetToDefault shows every column again.
func (s ColumnStore) ResetToDefault() models.ColumnVisibility {
	cols := models.DefaultColumnVisibility()
	s.save(cols)
	return cols
}

func (s ColumnStore) save(cols models.ColumnVisibility) {
	if s.Store == nil {
		return
	}
	b, err := json.Marshal(cols)
	if err != nil {
		utils.LogFailure(s.RequestID, "columns", "encode", err)
		return
	}
	if err := s.Store.Set(ColumnsSettingKey, string(b)); err != nil {
		utils.LogFailure(s.RequestID, "columns", "save", err)
	}
}

// MemoryStore is a process-local KeyValueStore.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}
