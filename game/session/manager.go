package session

import (
	"errors"
	"sync"
	"time"

	log "github.com/inconshreveable/log15/v3"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
)

var (
	// ErrSessionNotFound is returned when no session exists for a room.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExists is returned when a room already has a running game.
	ErrSessionExists = errors.New("session already exists")
	// ErrSessionClosed is returned when operating on a torn-down session.
	ErrSessionClosed = errors.New("session closed")
)

// InactivityLimit is how long a session may sit without a successful action
// before the watchdog ends the match.
const InactivityLimit = 30 * time.Minute

// Session wraps one running game with its timers. All game access goes
// through Do or View, which hold the session lock, so the engine only ever
// sees one writer.
type Session struct {
	RoomID string

	mu        sync.Mutex
	game      *engine.Game
	mgr       *Manager
	epoch     uint64
	turnTimer Timer
	watchdog  Timer
	closed    bool
}

// Do runs fn against the game under the session lock. When fn succeeds the
// turn and inactivity timers are re-armed against the (possibly new) turn.
func (s *Session) Do(fn func(*engine.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if err := fn(s.game); err != nil {
		return err
	}
	s.rearmLocked()
	return nil
}

// View runs fn read-only under the session lock.
func (s *Session) View(fn func(*engine.Game)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	fn(s.game)
	return nil
}

// rearmLocked cancels any armed timers and, while the game is running,
// schedules the turn timer for whatever is left until the engine's deadline,
// plus the inactivity watchdog. An action that does not advance the turn
// keeps the same deadline. The epoch guards against a stale timer that
// already left AfterFunc but has not taken the lock yet.
func (s *Session) rearmLocked() {
	s.epoch++
	s.stopTimersLocked()
	if s.game.Finished {
		return
	}
	epoch := s.epoch
	turn := time.Until(s.game.TurnDeadline)
	if turn < 0 {
		turn = 0
	}
	s.turnTimer = s.mgr.sched.AfterFunc(turn, func() { s.onDeadline(epoch) })
	s.watchdog = s.mgr.sched.AfterFunc(InactivityLimit, func() { s.onIdle(epoch) })
}

func (s *Session) stopTimersLocked() {
	if s.turnTimer != nil {
		s.turnTimer.Stop()
		s.turnTimer = nil
	}
	if s.watchdog != nil {
		s.watchdog.Stop()
		s.watchdog = nil
	}
}

func (s *Session) onDeadline(epoch uint64) {
	s.mu.Lock()
	if s.closed || epoch != s.epoch || s.game.Finished {
		s.mu.Unlock()
		return
	}
	s.mgr.log.Info("turn deadline passed", "room", s.RoomID, "player", s.game.CurrentPlayer().ID)
	s.game.ForceTimeout()
	s.rearmLocked()
	s.mu.Unlock()

	if s.mgr.OnTimeout != nil {
		s.mgr.OnTimeout(s.RoomID)
	}
}

func (s *Session) onIdle(epoch uint64) {
	s.mu.Lock()
	if s.closed || epoch != s.epoch || s.game.Finished {
		s.mu.Unlock()
		return
	}
	s.mgr.log.Info("session idle, ending match", "room", s.RoomID)
	s.game.Abort("inactivity")
	s.rearmLocked()
	s.mu.Unlock()

	if s.mgr.OnExpired != nil {
		s.mgr.OnExpired(s.RoomID)
	}
}

// close tears the session down. Safe to call twice.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.epoch++
	s.stopTimersLocked()
}

// Manager is the registry of running sessions, one per room.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	sched    Scheduler
	log      log.Logger

	// OnTimeout fires after a turn deadline forced a discard.
	OnTimeout func(roomID string)
	// OnExpired fires after the inactivity watchdog ended a match.
	OnExpired func(roomID string)
}

// NewManager creates an empty session registry.
func NewManager(logger log.Logger) *Manager {
	if logger == nil {
		logger = log.New()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		sched:    realScheduler{},
		log:      logger,
	}
}

// SetScheduler replaces the timer source. Test seam.
func (m *Manager) SetScheduler(s Scheduler) {
	m.sched = s
}

// Create registers a session for the room and arms its timers.
func (m *Manager) Create(roomID string, g *engine.Game) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[roomID]; ok {
		return nil, ErrSessionExists
	}
	s := &Session{RoomID: roomID, game: g, mgr: m}
	m.sessions[roomID] = s

	s.mu.Lock()
	s.rearmLocked()
	s.mu.Unlock()

	m.log.Info("session created", "room", roomID, "players", len(g.Players))
	return s, nil
}

// Get returns the session for a room.
func (m *Manager) Get(roomID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[roomID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete tears down and removes the session for a room.
func (m *Manager) Delete(roomID string) error {
	m.mu.Lock()
	s, ok := m.sessions[roomID]
	delete(m.sessions, roomID)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.close()
	m.log.Info("session deleted", "room", roomID)
	return nil
}

// List returns the room IDs with running sessions.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		out = append(out, id)
	}
	return out
}
