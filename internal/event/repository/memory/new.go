package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-assistant/internal/event/repository"
	"calendar-assistant/pkg/log"
)

const (
	DefaultMaxSessions = 1000
	DefaultTTL         = 24 * time.Hour
)

// Options bounds the number of sessions kept and how long an idle one lives.
type Options struct {
	MaxSessions int
	TTL         time.Duration
}

type implRepository struct {
	mu       sync.Mutex // serialises session creation
	sessions *expirable.LRU[string, *session]
	pinned   map[string]*session // sessions with an extraction in flight
	l        log.Logger
	newID    func() string
}

// New creates an in-memory Repository. Sessions are evicted when idle for
// longer than TTL or when more than MaxSessions are active.
func New(l log.Logger, opt Options) repository.Repository {
	if opt.MaxSessions <= 0 {
		opt.MaxSessions = DefaultMaxSessions
	}
	if opt.TTL <= 0 {
		opt.TTL = DefaultTTL
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, *session](opt.MaxSessions, nil, opt.TTL),
		pinned:   make(map[string]*session),
		l:        l,
		newID:    uuid.NewString,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/memory.%s", method)
}

// session returns the session with id, creating it when create is set. Every
// access re-adds the entry so the TTL slides. A pinned session evicted from
// the LRU is restored rather than recreated.
func (r *implRepository) session(id string, create bool) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions.Get(id)
	if !ok {
		s, ok = r.pinned[id]
	}
	if !ok {
		if !create {
			return nil, false
		}
		s = newSession()
	}
	r.sessions.Add(id, s)
	return s, true
}

// setPinned keeps s reachable while pin is set, whatever the LRU evicts.
func (r *implRepository) setPinned(id string, s *session, pin bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pin {
		r.pinned[id] = s
		return
	}
	delete(r.pinned, id)
}
