// Package memstore provides an in-memory preference repository for tests
// and for platforms without a writable data directory.
package memstore

import (
	"context"
	"sync"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
	"github.com/gauchobites/gauchobites/internal/domain/repository"
)

type preferenceRepo struct {
	mu   sync.Mutex
	mode entity.ThemeMode
	set  bool
}

// NewPreferenceRepository creates an empty in-memory repository.
func NewPreferenceRepository() repository.PreferenceRepository {
	return &preferenceRepo{}
}

func (r *preferenceRepo) GetThemeMode(_ context.Context) (entity.ThemeMode, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.set {
		return "", false, nil
	}
	return r.mode, true, nil
}

func (r *preferenceRepo) SetThemeMode(_ context.Context, mode entity.ThemeMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = mode
	r.set = true
	return nil
}
