package bolt

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
)

type preferencesDocument struct {
	SchemaVersion int                `json:"schema_version"`
	Preferences   domain.Preferences `json:"preferences"`
}

// PreferencesRepository implements repository.PreferencesRepository on top of storage.DB.
type PreferencesRepository struct {
	db     *storage.DB
	logger *zap.Logger

	mu  sync.RWMutex
	doc preferencesDocument
}

func NewPreferencesRepository(db *storage.DB, logger *zap.Logger) (*PreferencesRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &PreferencesRepository{db: db, logger: logger}

	found, err := db.Get(collectionPreferences, &r.doc)
	if err != nil {
		return nil, err
	}
	if !found {
		r.doc = preferencesDocument{
			SchemaVersion: schemaVersion,
			Preferences:   domain.DefaultPreferences(),
		}
	}
	return r, nil
}

func (r *PreferencesRepository) Get(ctx context.Context) (domain.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.Preferences, nil
}

func (r *PreferencesRepository) Update(ctx context.Context, mutate func(*domain.Preferences)) (domain.Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefs := r.doc.Preferences
	mutate(&prefs)
	r.doc.Preferences = prefs
	return prefs, r.persist()
}

func (r *PreferencesRepository) Reset(ctx context.Context) (domain.Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Preferences = domain.DefaultPreferences()
	return r.doc.Preferences, r.persist()
}

func (r *PreferencesRepository) persist() error {
	if err := r.db.Put(collectionPreferences, r.doc); err != nil {
		r.logger.Warn("preferences write failed", zap.Error(err))
		return persistErr(collectionPreferences, err)
	}
	return nil
}
