package memory

import (
	"time"

	"edusphere-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps TutorSessions in process memory, keyed by username.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions idle for 12 hours are evicted; expired items are purged every
	// 10 minutes
	c := cache.New(12*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.TutorSession) {
	r.cache.Set(session.Username, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(username string) (*store.TutorSession, bool) {
	if x, found := r.cache.Get(username); found {
		return x.(*store.TutorSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(username string) {
	r.cache.Delete(username)
}
