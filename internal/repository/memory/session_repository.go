package memory

import (
	"time"

	"salesdesk-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository builds the in-memory session store. Items never expire
// on their own: the session service owns the inactivity deadline and deletes
// sessions explicitly, so cache TTL must not race it. The long default
// expiration plus purge interval is only a safety net against leaked entries.
func NewSessionRepository() *SessionRepository {
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &SessionRepository{
		cache: c,
	}
}

// Save publishes a snapshot of the session. Callers keep ownership of the
// value they passed in; later mutations are invisible until the next Save.
func (r *SessionRepository) Save(session *entity.Session) {
	r.cache.Set(session.Token, session.Clone(), cache.DefaultExpiration)
}

// Get returns a private copy of the stored session, so concurrent requests
// for the same token never share mutable state.
func (r *SessionRepository) Get(token string) (*entity.Session, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(*entity.Session).Clone(), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(token string) {
	r.cache.Delete(token)
}
