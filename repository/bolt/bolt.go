// Package bolt persists each collection as a single JSON document in an
// embedded BoltDB file. Repositories keep the working copy in memory behind a
// per-collection mutex and rewrite the whole document on every mutation, so a
// restart always recovers the last successfully written state.
package bolt

import (
	"github.com/lifeboard/backend/domain"
)

// schemaVersion is stamped into every persisted document so future layout
// changes can migrate old files instead of rejecting them.
const schemaVersion = 1

// Collection names double as Bolt document keys.
const (
	collectionTasks         = "tasks"
	collectionActivities    = "activities"
	collectionPosts         = "posts"
	collectionConversations = "conversations"
	collectionProfile       = "user-profile"
	collectionPreferences   = "preferences"
)

// persistErr classifies a failed durable write. The in-memory mutation has
// already been applied when this is returned; callers surface it as a
// non-fatal warning rather than rolling back.
func persistErr(name string, err error) error {
	return domain.WrapError(domain.ErrCodePersistence, "failed to persist "+name, err)
}
