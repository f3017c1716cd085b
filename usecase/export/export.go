package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

// BundleVersion is stamped into every export so future importers can detect
// old layouts.
const BundleVersion = "1.0.0"

// Selection picks which collections an export includes.
type Selection struct {
	Tasks         bool
	Activities    bool
	Posts         bool
	Conversations bool
}

// All selects every collection.
func All() Selection {
	return Selection{Tasks: true, Activities: true, Posts: true, Conversations: true}
}

// BundleData holds the exported collections; absent ones are omitted.
type BundleData struct {
	Tasks         []domain.Task         `json:"tasks,omitempty"`
	Activities    []domain.Activity     `json:"activities,omitempty"`
	Posts         []domain.Post         `json:"posts,omitempty"`
	Conversations []domain.Conversation `json:"conversations,omitempty"`
}

// Bundle is the user-facing JSON export format.
type Bundle struct {
	ExportDate time.Time  `json:"exportDate"`
	Version    string     `json:"version"`
	Data       BundleData `json:"data"`
}

type UseCase struct {
	tasks         repository.TaskRepository
	activities    repository.ActivityRepository
	posts         repository.PostRepository
	conversations repository.ConversationRepository
	logger        *zap.Logger
}

func New(
	tasks repository.TaskRepository,
	activities repository.ActivityRepository,
	posts repository.PostRepository,
	conversations repository.ConversationRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:         tasks,
		activities:    activities,
		posts:         posts,
		conversations: conversations,
		logger:        logger,
	}
}

// ExportBundle snapshots the selected collections.
func (uc *UseCase) ExportBundle(ctx context.Context, sel Selection) (*Bundle, error) {
	bundle := &Bundle{
		ExportDate: time.Now().UTC(),
		Version:    BundleVersion,
	}
	var err error
	if sel.Tasks {
		if bundle.Data.Tasks, err = uc.tasks.List(ctx); err != nil {
			return nil, err
		}
	}
	if sel.Activities {
		if bundle.Data.Activities, err = uc.activities.List(ctx); err != nil {
			return nil, err
		}
	}
	if sel.Posts {
		if bundle.Data.Posts, err = uc.posts.List(ctx); err != nil {
			return nil, err
		}
	}
	if sel.Conversations {
		if bundle.Data.Conversations, err = uc.conversations.List(ctx); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

// ExportCSV renders the simplified flat export: one row per task and
// activity with fixed columns.
func (uc *UseCase) ExportCSV(ctx context.Context, sel Selection) ([]byte, error) {
	var tasks []domain.Task
	var activities []domain.Activity
	var err error
	if sel.Tasks {
		if tasks, err = uc.tasks.List(ctx); err != nil {
			return nil, err
		}
	}
	if sel.Activities {
		if activities, err = uc.activities.List(ctx); err != nil {
			return nil, err
		}
	}
	return RenderCSV(tasks, activities)
}

// ImportBundle restores the collections present in the bundle, replacing the
// current contents wholesale so a re-import reproduces the exported state
// exactly, ids included.
func (uc *UseCase) ImportBundle(ctx context.Context, bundle *Bundle) error {
	if bundle == nil {
		return domain.ErrInvalidPayload
	}
	if bundle.Data.Tasks != nil {
		if err := uc.tasks.ClearAll(ctx); err != nil {
			return err
		}
		// Insert oldest-first: Add prepends, so this preserves bundle order.
		for i := len(bundle.Data.Tasks) - 1; i >= 0; i-- {
			if err := uc.tasks.Add(ctx, bundle.Data.Tasks[i]); err != nil {
				return err
			}
		}
	}
	if bundle.Data.Activities != nil {
		if err := uc.activities.ClearAll(ctx); err != nil {
			return err
		}
		for i := len(bundle.Data.Activities) - 1; i >= 0; i-- {
			if err := uc.activities.Add(ctx, bundle.Data.Activities[i]); err != nil {
				return err
			}
		}
	}
	if bundle.Data.Posts != nil {
		if err := uc.posts.ClearAll(ctx); err != nil {
			return err
		}
		for i := len(bundle.Data.Posts) - 1; i >= 0; i-- {
			if err := uc.posts.Add(ctx, bundle.Data.Posts[i]); err != nil {
				return err
			}
		}
	}
	if bundle.Data.Conversations != nil {
		if err := uc.conversations.ClearAll(ctx); err != nil {
			return err
		}
		for i := len(bundle.Data.Conversations) - 1; i >= 0; i-- {
			if err := uc.conversations.Add(ctx, bundle.Data.Conversations[i]); err != nil {
				return err
			}
		}
	}
	uc.logger.Info("import complete",
		zap.Int("tasks", len(bundle.Data.Tasks)),
		zap.Int("activities", len(bundle.Data.Activities)),
		zap.Int("posts", len(bundle.Data.Posts)),
		zap.Int("conversations", len(bundle.Data.Conversations)))
	return nil
}

// RenderCSV writes the fixed Type,Title,Status,Date layout. Tasks report
// Completed/Pending, activities report their category.
func RenderCSV(tasks []domain.Task, activities []domain.Activity) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Type", "Title", "Status", "Date"}); err != nil {
		return nil, err
	}
	for _, t := range tasks {
		status := "Pending"
		if t.Completed {
			status = "Completed"
		}
		if err := w.Write([]string{"Task", t.Title, status, t.CreatedAt.Format(time.RFC3339)}); err != nil {
			return nil, err
		}
	}
	for _, a := range activities {
		if err := w.Write([]string{"Activity", a.Title, string(a.Category), a.Date.Format(time.RFC3339)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
