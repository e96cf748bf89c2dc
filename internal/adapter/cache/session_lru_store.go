package cache

import (
	"context"
	"time"

	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/usecase/interfaces"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultSessionTTL        = 2 * time.Hour
	DefaultSessionMaxEntries = 10000
)

// SessionLRUStore keeps quote sessions in memory, bounded by size and idle
// TTL. Every Put refreshes the TTL.
type SessionLRUStore struct {
	cache *lru.LRU[string, entities.QuoteSession]
}

var _ interfaces.ISessionStore = (*SessionLRUStore)(nil)

func NewSessionLRUStore(maxEntries int, ttl time.Duration) *SessionLRUStore {
	if maxEntries <= 0 {
		maxEntries = DefaultSessionMaxEntries
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	onEvict := func(id string, _ entities.QuoteSession) {
		log.Debugf("[session][cache] evicted session_id=%s", id)
	}
	return &SessionLRUStore{cache: lru.NewLRU[string, entities.QuoteSession](maxEntries, onEvict, ttl)}
}

func (s *SessionLRUStore) Get(_ context.Context, id string) (entities.QuoteSession, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return entities.QuoteSession{}, nil
	}
	return v.Clone(), nil
}

func (s *SessionLRUStore) Put(_ context.Context, session entities.QuoteSession) error {
	s.cache.Add(session.ID, session.Clone())
	return nil
}

func (s *SessionLRUStore) Len() int {
	return s.cache.Len()
}
