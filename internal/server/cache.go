package server

import (
	"context"
	"time"

	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/session"
)

// listCache serves the session's latest generation while it is younger than
// ttl and runs a fresh pass otherwise. A ttl of 0 disables caching.
type listCache struct {
	sess *session.Session
	ttl  time.Duration
	now  func() time.Time
}

func newListCache(sess *session.Session, ttl time.Duration) *listCache {
	return &listCache{sess: sess, ttl: ttl, now: time.Now}
}

// List returns the window list resolved against view. cached reports
// whether the result came from an existing generation.
func (c *listCache) List(ctx context.Context, view model.View) (rec model.Reconciliation, cached bool, err error) {
	if c.ttl > 0 && c.sess.Registry().Age(c.now()) < c.ttl {
		return c.sess.Project(view), true, nil
	}
	rec, err = c.sess.Refresh(ctx, view)
	return rec, false, err
}
