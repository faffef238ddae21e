package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/hdngo/sheetcoach/internal/model"
)

// ErrSessionNotFound is returned for lookups of unknown or already removed
// session identifiers.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the only access path to stored sessions. The backing
// store is volatile process memory; nothing survives a restart.
type SessionRepository interface {
	Save(session *model.Session) error
	FindByID(id string) (*model.Session, error)
	// Update runs fn on the stored session under that session's lock. The
	// session passed to fn is the live record; fn returning an error leaves
	// whatever fn already did in place, so mutators should fail before
	// touching state. On success the updated session is returned as a copy.
	Update(id string, fn func(*model.Session) error) (*model.Session, error)
	FindAll() []*model.Session
	Delete(id string)
	// DeleteOlderThan removes every session started before cutoff,
	// regardless of status, and reports how many were removed.
	DeleteOlderThan(cutoff time.Time) int
}

type sessionEntry struct {
	mu      sync.Mutex
	session *model.Session
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

func NewSessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]*sessionEntry)}
}

func (r *memorySessionRepository) Save(session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = &sessionEntry{session: cloneSession(session)}
	return nil
}

func (r *memorySessionRepository) FindByID(id string) (*model.Session, error) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneSession(e.session), nil
}

func (r *memorySessionRepository) Update(id string, fn func(*model.Session) error) (*model.Session, error) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.session); err != nil {
		return nil, err
	}
	return cloneSession(e.session), nil
}

func (r *memorySessionRepository) FindAll() []*model.Session {
	r.mu.RLock()
	entries := make([]*sessionEntry, 0, len(r.sessions))
	for _, e := range r.sessions {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	out := make([]*model.Session, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, cloneSession(e.session))
		e.mu.Unlock()
	}
	return out
}

func (r *memorySessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *memorySessionRepository) DeleteOlderThan(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.sessions {
		if e.session.StartedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// cloneSession copies a session deeply enough that callers can never reach
// the stored slices through a returned value.
func cloneSession(s *model.Session) *model.Session {
	c := *s
	c.Questions = append([]model.Question(nil), s.Questions...)
	c.Answers = append([]model.Answer(nil), s.Answers...)
	c.Evaluations = append([]model.EvaluationResult(nil), s.Evaluations...)
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		c.CompletedAt = &t
	}
	if s.OverallScore != nil {
		v := *s.OverallScore
		c.OverallScore = &v
	}
	return &c
}
