package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/raulmoralesruiz/virus-backend/game/config"
	"github.com/raulmoralesruiz/virus-backend/game/engine"
	"github.com/raulmoralesruiz/virus-backend/game/lobby"
	"github.com/raulmoralesruiz/virus-backend/game/service"
	"github.com/raulmoralesruiz/virus-backend/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.GameService
	lobby   *lobby.Store
	presets *config.Manager
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server. presets and hub may be nil.
func NewServer(gameService service.GameService, store *lobby.Store, presets *config.Manager, hub *websocket.Hub) *Server {
	s := &Server{
		service: gameService,
		lobby:   store,
		presets: presets,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Lobby
	api.HandleFunc("/players", s.handleCreatePlayer).Methods("POST")
	api.HandleFunc("/players/{id}", s.handleGetPlayer).Methods("GET")
	api.HandleFunc("/rooms", s.handleCreateRoom).Methods("POST")
	api.HandleFunc("/rooms", s.handleListRooms).Methods("GET")
	api.HandleFunc("/rooms/{id}", s.handleGetRoom).Methods("GET")
	api.HandleFunc("/rooms/{id}", s.handleDeleteRoom).Methods("DELETE")
	api.HandleFunc("/rooms/{id}/join", s.handleJoinRoom).Methods("POST")
	api.HandleFunc("/rooms/{id}/leave", s.handleLeaveRoom).Methods("POST")

	// Game operations
	api.HandleFunc("/rooms/{id}/start", s.handleStartGame).Methods("POST")
	api.HandleFunc("/rooms/{id}/state", s.handleGetState).Methods("GET")
	api.HandleFunc("/rooms/{id}/hand", s.handleGetHand).Methods("GET")
	api.HandleFunc("/rooms/{id}/play", s.handlePlayCard).Methods("POST")
	api.HandleFunc("/rooms/{id}/draw", s.handleDrawCard).Methods("POST")
	api.HandleFunc("/rooms/{id}/discard", s.handleDiscardCards).Methods("POST")

	// Presets
	api.HandleFunc("/presets", s.handleListPresets).Methods("GET")
	api.HandleFunc("/presets/{name}", s.handleGetPreset).Methods("GET")

	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondGameError maps engine error codes onto HTTP statuses while keeping
// the code in the payload for clients.
func respondGameError(w http.ResponseWriter, err error) {
	var ge *engine.Error
	if errors.As(err, &ge) {
		status := http.StatusBadRequest
		switch ge.Code {
		case "GAME_NOT_FOUND", "NO_PLAYER":
			status = http.StatusNotFound
		case "SERVER_ERROR":
			status = http.StatusInternalServerError
		}
		respondJSON(w, status, map[string]string{"error": ge.Message, "code": ge.Code})
		return
	}
	switch {
	case errors.Is(err, lobby.ErrPlayerNotFound), errors.Is(err, lobby.ErrRoomNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, lobby.ErrRoomFull), errors.Is(err, lobby.ErrAlreadyInRoom),
		errors.Is(err, lobby.ErrRoomInProgress), errors.Is(err, lobby.ErrNotInRoom):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// Lobby Handlers

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	player, err := s.lobby.CreatePlayer(req.Name)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, player)
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := s.lobby.GetPlayer(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, player)
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"player_id"`
		Private  bool   `json:"private,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, err := s.lobby.CreateRoom(req.PlayerID, req.Private)
	if err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, room)
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms := s.lobby.ListPublicRooms()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(rooms),
		"rooms": rooms,
	})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := s.lobby.GetRoom(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, room)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	// A running game dies with its room.
	_ = s.service.EndSession(r.Context(), roomID)

	if err := s.lobby.DeleteRoom(roomID); err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Room %s deleted", roomID),
	})
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"player_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, err := s.lobby.JoinRoom(mux.Vars(r)["id"], req.PlayerID)
	if err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, room)
}

func (s *Server) handleLeaveRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"player_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.lobby.LeaveRoom(mux.Vars(r)["id"], req.PlayerID); err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "left room"})
}

// Game Operation Handlers

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	var req struct {
		PlayerID    string      `json:"player_id"`
		Preset      string      `json:"preset,omitempty"`
		Mode        engine.Mode `json:"mode,omitempty"`
		TurnSeconds int         `json:"turn_seconds,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, err := s.lobby.GetRoom(roomID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if room.HostID != req.PlayerID {
		respondError(w, http.StatusForbidden, "only the host can start the game")
		return
	}

	opts := service.StartOptions{Mode: req.Mode, TurnSeconds: req.TurnSeconds}
	if s.presets != nil {
		preset := s.presets.GetDefault()
		if req.Preset != "" {
			preset, err = s.presets.LoadPreset(req.Preset)
			if err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
		}
		if opts.Mode == "" {
			opts.Mode = preset.Mode
		}
		if opts.TurnSeconds == 0 {
			opts.TurnSeconds = preset.TurnSeconds
		}
	}

	state, err := s.service.StartSession(r.Context(), roomID, opts)
	if err != nil {
		respondGameError(w, err)
		return
	}
	if err := s.lobby.SetInProgress(roomID, true); err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, state)
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := s.service.GetPublicState(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleGetHand(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("player")
	if playerID == "" {
		respondError(w, http.StatusBadRequest, "player parameter required")
		return
	}

	hand, err := s.service.GetPrivateHand(r.Context(), mux.Vars(r)["id"], playerID)
	if err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"hand": hand})
}

func (s *Server) handlePlayCard(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	var req struct {
		PlayerID string        `json:"player_id"`
		CardID   string        `json:"card_id"`
		Target   engine.Target `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state, err := s.service.PlayCard(r.Context(), roomID, req.PlayerID, req.CardID, req.Target)
	if err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleDrawCard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"player_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	hand, err := s.service.DrawCard(r.Context(), mux.Vars(r)["id"], req.PlayerID)
	if err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"hand": hand})
}

func (s *Server) handleDiscardCards(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string   `json:"player_id"`
		CardIDs  []string `json:"card_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state, err := s.service.DiscardCards(r.Context(), mux.Vars(r)["id"], req.PlayerID, req.CardIDs)
	if err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// Preset Handlers

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	if s.presets == nil {
		respondJSON(w, http.StatusOK, []interface{}{})
		return
	}
	presets, err := s.presets.ListPresets()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, presets)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	if s.presets == nil {
		respondError(w, http.StatusNotFound, "no presets configured")
		return
	}
	preset, err := s.presets.LoadPreset(mux.Vars(r)["name"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, preset)
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	playerID := r.URL.Query().Get("player")
	if roomID == "" || playerID == "" {
		http.Error(w, "room and player parameters required", http.StatusBadRequest)
		return
	}

	if _, err := s.lobby.GetRoom(roomID); err != nil {
		http.Error(w, "Invalid room", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, roomID, playerID)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
