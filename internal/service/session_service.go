// FILE: internal/service/session_service.go
package service

import (
	"context"
	"sync"
	"time"

	"salesdesk-be/internal/constant"
	"salesdesk-be/internal/entity"
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/internal/pkg/scheduler"
	"salesdesk-be/internal/repository/contract"
	"salesdesk-be/pkg/events"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(username string) *entity.Session
	Resolve(token string) (*entity.Session, bool)
	Touch(token string) bool
	Logout(token string) bool
	NoticePending(token string) bool

	ToggleSelection(token, catalog, productId string) ([]string, bool)
	Selection(token, catalog string) ([]string, bool)
	ClearSelection(token, catalog string) bool

	Shutdown()
}

// sessionService owns the whole session lifecycle: creation at login,
// the rolling inactivity deadline, auto-expiry with its transient notice,
// and the per-catalog comparison selection tied to the session.
type sessionService struct {
	repo      contract.SessionRepository
	sched     scheduler.Scheduler
	publisher IPublisherService
	logger    logger.ILogger

	idleTimeout    time.Duration
	noticeDuration time.Duration
	compareLimit   int

	// mu serializes timer/notice bookkeeping and every get-mutate-save
	// sequence on a session. The store hands out copies, so without this
	// two concurrent toggles on one token would silently lose updates.
	mu      sync.Mutex
	timers  map[string]scheduler.CancelFunc
	notices map[string]bool
}

func NewSessionService(
	repo contract.SessionRepository,
	sched scheduler.Scheduler,
	publisher IPublisherService,
	log logger.ILogger,
	idleTimeout time.Duration,
	noticeDuration time.Duration,
	compareLimit int,
) ISessionService {
	return &sessionService{
		repo:           repo,
		sched:          sched,
		publisher:      publisher,
		logger:         log,
		idleTimeout:    idleTimeout,
		noticeDuration: noticeDuration,
		compareLimit:   compareLimit,
		timers:         make(map[string]scheduler.CancelFunc),
		notices:        make(map[string]bool),
	}
}

func (s *sessionService) Create(username string) *entity.Session {
	now := time.Now()
	session := &entity.Session{
		Token:        uuid.NewString(),
		Username:     username,
		CreatedAt:    now,
		LastActivity: now,
		Selections:   make(map[string][]string),
	}
	s.repo.Save(session)
	s.schedule(session.Token)

	s.logger.Info("SessionService", "Session created", map[string]interface{}{"username": username})
	return session
}

func (s *sessionService) Resolve(token string) (*entity.Session, bool) {
	return s.repo.Get(token)
}

// Touch registers qualifying activity: the inactivity deadline moves
// idleTimeout into the future, replacing the previous one. Last writer wins.
func (s *sessionService) Touch(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.repo.Get(token)
	if !ok {
		return false
	}
	session.LastActivity = time.Now()
	s.repo.Save(session)
	s.scheduleLocked(token)
	return true
}

func (s *sessionService) Logout(token string) bool {
	s.mu.Lock()
	session, ok := s.repo.Get(token)
	if !ok {
		s.mu.Unlock()
		return false
	}
	if cancel, ok := s.timers[token]; ok {
		cancel()
		delete(s.timers, token)
	}
	s.repo.Delete(token)
	s.mu.Unlock()

	if err := s.publisher.Publish(context.Background(), events.NewUserLogout(session.Username)); err != nil {
		s.logger.Warn("SessionService", "Failed to publish logout event", map[string]interface{}{"error": err.Error()})
	}
	s.logger.Info("SessionService", "Session ended", map[string]interface{}{"username": session.Username})
	return true
}

// NoticePending reports whether the auto-logout banner should still be shown
// for this (now dead) token.
func (s *sessionService) NoticePending(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notices[token]
}

// ToggleSelection adds or removes a product from the session's comparison
// picks. Adding beyond a capped catalog's limit is a silent no-op. The
// returned bool reports whether the set changed.
func (s *sessionService) ToggleSelection(token, catalog, productId string) ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.repo.Get(token)
	if !ok {
		return nil, false
	}

	current := session.Selections[catalog]
	if session.Selected(catalog, productId) {
		next := make([]string, 0, len(current)-1)
		for _, id := range current {
			if id != productId {
				next = append(next, id)
			}
		}
		session.Selections[catalog] = next
		s.repo.Save(session)
		return next, true
	}

	if limit := s.limitFor(catalog); limit > 0 && len(current) >= limit {
		return current, false
	}

	next := append(append([]string{}, current...), productId)
	session.Selections[catalog] = next
	s.repo.Save(session)
	return next, true
}

func (s *sessionService) Selection(token, catalog string) ([]string, bool) {
	session, ok := s.repo.Get(token)
	if !ok {
		return nil, false
	}
	return session.Selections[catalog], true
}

func (s *sessionService) ClearSelection(token, catalog string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.repo.Get(token)
	if !ok {
		return false
	}
	delete(session.Selections, catalog)
	s.repo.Save(session)
	return true
}

// Shutdown cancels every pending timer. Sessions themselves stay in the store
// only as long as the process lives anyway.
func (s *sessionService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, cancel := range s.timers {
		cancel()
		delete(s.timers, token)
	}
}

func (s *sessionService) limitFor(catalog string) int {
	if catalog == constant.CatalogCompare {
		return s.compareLimit
	}
	return 0
}

func (s *sessionService) schedule(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduleLocked(token)
}

// scheduleLocked replaces the token's inactivity timer. Caller holds s.mu.
func (s *sessionService) scheduleLocked(token string) {
	if cancel, ok := s.timers[token]; ok {
		cancel()
	}
	s.timers[token] = s.sched.AfterFunc(s.idleTimeout, func() {
		s.expire(token)
	})
}

func (s *sessionService) expire(token string) {
	s.mu.Lock()
	delete(s.timers, token)

	session, ok := s.repo.Get(token)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.repo.Delete(token)

	// The notice clears on its own clock, independent of any later activity.
	s.notices[token] = true
	s.sched.AfterFunc(s.noticeDuration, func() {
		s.mu.Lock()
		delete(s.notices, token)
		s.mu.Unlock()
	})
	s.mu.Unlock()

	if err := s.publisher.Publish(context.Background(), events.NewSessionExpired(token, session.Username)); err != nil {
		s.logger.Warn("SessionService", "Failed to publish expiry event", map[string]interface{}{"error": err.Error()})
	}
	s.logger.Info("SessionService", "Session auto-expired after inactivity", map[string]interface{}{
		"username": session.Username,
	})
}
