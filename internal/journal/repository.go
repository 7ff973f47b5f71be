package journal

import (
	"context"

	"github.com/mj1618/pinwin/internal/model"
	"github.com/pkg/errors"
)

// Repository handles all journal reads and writes
type Repository struct {
	db *DB
}

// NewRepository creates a new repository instance
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Record inserts one command event.
func (r *Repository) Record(ctx context.Context, ev model.CommandEvent) error {
	result := r.db.WithContext(ctx).Create(entryFromEvent(ev))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to insert command entry")
	}
	return nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns all entries.
func (r *Repository) Recent(limit int) ([]CommandEntry, error) {
	var entries []CommandEntry
	q := r.db.Order("timestamp DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if result := q.Find(&entries); result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query command entries")
	}
	return entries, nil
}

// Count returns the number of recorded commands.
func (r *Repository) Count() (int64, error) {
	var n int64
	if result := r.db.Model(&CommandEntry{}).Count(&n); result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to count command entries")
	}
	return n, nil
}

// Clear removes all entries and reports how many were deleted.
func (r *Repository) Clear() (int64, error) {
	result := r.db.Exec("DELETE FROM command_entries")
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear command entries")
	}
	return result.RowsAffected, nil
}
