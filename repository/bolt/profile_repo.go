package bolt

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
)

type profileDocument struct {
	SchemaVersion int                `json:"schema_version"`
	Profile       domain.UserProfile `json:"profile"`
}

// ProfileRepository implements repository.ProfileRepository on top of storage.DB.
type ProfileRepository struct {
	db     *storage.DB
	logger *zap.Logger

	mu  sync.RWMutex
	doc profileDocument
}

func NewProfileRepository(db *storage.DB, logger *zap.Logger) (*ProfileRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &ProfileRepository{db: db, logger: logger}

	found, err := db.Get(collectionProfile, &r.doc)
	if err != nil {
		return nil, err
	}
	if !found {
		r.doc = profileDocument{
			SchemaVersion: schemaVersion,
			Profile:       domain.DefaultProfile(),
		}
	}
	return r, nil
}

func (r *ProfileRepository) Get(ctx context.Context) (domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.Profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, mutate func(*domain.UserProfile)) (domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile := r.doc.Profile
	mutate(&profile)
	r.doc.Profile = profile
	return profile, r.persist()
}

func (r *ProfileRepository) Reset(ctx context.Context) (domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Profile = domain.DefaultProfile()
	return r.doc.Profile, r.persist()
}

func (r *ProfileRepository) persist() error {
	if err := r.db.Put(collectionProfile, r.doc); err != nil {
		r.logger.Warn("profile write failed", zap.Error(err))
		return persistErr(collectionProfile, err)
	}
	return nil
}
