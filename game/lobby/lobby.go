package lobby

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/inconshreveable/log15/v3"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
)

// MaxRoomPlayers caps how many players a room seats.
const MaxRoomPlayers = 6

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is full")
	ErrAlreadyInRoom  = errors.New("player is already in a room")
	ErrRoomInProgress = errors.New("room has a game in progress")
	ErrEmptyName      = errors.New("player name is empty")
	ErrNotInRoom      = errors.New("player is not in this room")
)

// Player is a registered display identity.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RoomID string `json:"room_id,omitempty"`
}

// Room is a lobby of seated players waiting for, or running, a game. The
// host is the first seat and the only one allowed to start the match.
type Room struct {
	ID         string    `json:"id"`
	HostID     string    `json:"host_id"`
	Private    bool      `json:"private"`
	InProgress bool      `json:"in_progress"`
	PlayerIDs  []string  `json:"player_ids"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store is the in-memory player directory and room registry.
type Store struct {
	mu      sync.RWMutex
	players map[string]*Player
	rooms   map[string]*Room
	log     log.Logger
}

// NewStore creates an empty lobby.
func NewStore(logger log.Logger) *Store {
	if logger == nil {
		logger = log.New()
	}
	return &Store{
		players: make(map[string]*Player),
		rooms:   make(map[string]*Room),
		log:     logger,
	}
}

// generateRoomID returns a short random hex code.
func generateRoomID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()[:8]
	}
	return hex.EncodeToString(b)
}

// CreatePlayer registers a new player with a fresh UUID.
func (s *Store) CreatePlayer(name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &Player{ID: uuid.NewString(), Name: name}
	s.players[p.ID] = p
	s.log.Debug("player created", "player", p.ID, "name", name)
	return clonePlayer(p), nil
}

// GetPlayer returns a player by ID.
func (s *Store) GetPlayer(playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return clonePlayer(p), nil
}

// CreateRoom opens a room with the given player as host and first seat.
func (s *Store) CreateRoom(hostID string, private bool) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	host, ok := s.players[hostID]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	if host.RoomID != "" {
		return nil, ErrAlreadyInRoom
	}
	r := &Room{
		ID:        generateRoomID(),
		HostID:    hostID,
		Private:   private,
		PlayerIDs: []string{hostID},
		CreatedAt: time.Now(),
	}
	s.rooms[r.ID] = r
	host.RoomID = r.ID
	s.log.Info("room created", "room", r.ID, "host", hostID, "private", private)
	return cloneRoom(r), nil
}

// GetRoom returns a room by ID.
func (s *Store) GetRoom(roomID string) (*Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return cloneRoom(r), nil
}

// JoinRoom seats a player in a room.
func (s *Store) JoinRoom(roomID, playerID string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	p, ok := s.players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	if p.RoomID != "" {
		return nil, ErrAlreadyInRoom
	}
	if r.InProgress {
		return nil, ErrRoomInProgress
	}
	if len(r.PlayerIDs) >= MaxRoomPlayers {
		return nil, ErrRoomFull
	}
	r.PlayerIDs = append(r.PlayerIDs, playerID)
	p.RoomID = roomID
	s.log.Info("player joined room", "room", roomID, "player", playerID)
	return cloneRoom(r), nil
}

// LeaveRoom unseats a player. When the host leaves the next seat inherits
// the room; an emptied room is removed.
func (s *Store) LeaveRoom(roomID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	idx := -1
	for i, id := range r.PlayerIDs {
		if id == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotInRoom
	}
	r.PlayerIDs = append(r.PlayerIDs[:idx], r.PlayerIDs[idx+1:]...)
	if p, ok := s.players[playerID]; ok {
		p.RoomID = ""
	}
	if len(r.PlayerIDs) == 0 {
		delete(s.rooms, roomID)
		s.log.Info("room removed", "room", roomID)
		return nil
	}
	if r.HostID == playerID {
		r.HostID = r.PlayerIDs[0]
	}
	return nil
}

// DeleteRoom drops a room and unseats everyone in it.
func (s *Store) DeleteRoom(roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	for _, id := range r.PlayerIDs {
		if p, ok := s.players[id]; ok {
			p.RoomID = ""
		}
	}
	delete(s.rooms, roomID)
	s.log.Info("room deleted", "room", roomID)
	return nil
}

// ListPublicRooms returns joinable public rooms.
func (s *Store) ListPublicRooms() []*Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Room
	for _, r := range s.rooms {
		if !r.Private && !r.InProgress {
			out = append(out, cloneRoom(r))
		}
	}
	return out
}

// SetInProgress flips the room's game flag.
func (s *Store) SetInProgress(roomID string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	r.InProgress = v
	return nil
}

// RoomPlayers returns the seated players in seating order. It implements
// the game service's player directory.
func (s *Store) RoomPlayers(roomID string) ([]engine.PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	infos := make([]engine.PlayerInfo, 0, len(r.PlayerIDs))
	for _, id := range r.PlayerIDs {
		p, ok := s.players[id]
		if !ok {
			continue
		}
		infos = append(infos, engine.PlayerInfo{ID: p.ID, Name: p.Name})
	}
	return infos, nil
}

func clonePlayer(p *Player) *Player {
	cp := *p
	return &cp
}

func cloneRoom(r *Room) *Room {
	cp := *r
	cp.PlayerIDs = append([]string{}, r.PlayerIDs...)
	return &cp
}
