package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		return true
	},
}

// Message is the envelope pushed to clients.
type Message struct {
	RoomID string              `json:"room_id"`
	Event  string              `json:"event"`
	State  *engine.PublicState `json:"state,omitempty"`
	Hand   []engine.Card       `json:"hand,omitempty"`

	// targetPlayerID narrows delivery to one player's connections.
	targetPlayerID string
}

// Client is one player connection inside a room.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	roomID   string
	playerID string
}

// Hub maintains the set of active clients per room and fans out state. It
// implements the game service's Broadcaster.
type Hub struct {
	// Registered clients by room ID
	rooms map[string]map[*Client]bool

	// Outbound messages to fan out
	broadcast chan *Message

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// NewHub creates a new WebSocket hub.
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.fanOut(message)
		}
	}
}

// ServeWS upgrades an HTTP request into a room connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, roomID, playerID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, 256),
		roomID:   roomID,
		playerID: playerID,
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// BroadcastState sends the public snapshot to everyone in the room.
func (h *Hub) BroadcastState(roomID string, st engine.PublicState) {
	h.broadcast <- &Message{RoomID: roomID, Event: "state_update", State: &st}
}

// SendHand delivers a private hand to a single player's connections.
func (h *Hub) SendHand(roomID, playerID string, hand []engine.Card) {
	h.broadcast <- &Message{RoomID: roomID, Event: "hand_update", Hand: hand, targetPlayerID: playerID}
}

// NotifyGameEnded tells the room the match is over.
func (h *Hub) NotifyGameEnded(roomID string, st engine.PublicState) {
	h.broadcast <- &Message{RoomID: roomID, Event: "game_ended", State: &st}
}

// registerClient adds a client to a room.
func (h *Hub) registerClient(client *Client) {
	if h.rooms[client.roomID] == nil {
		h.rooms[client.roomID] = make(map[*Client]bool)
	}
	h.rooms[client.roomID][client] = true

	log.Printf("Client %s registered for room %s (total clients: %d)",
		client.playerID, client.roomID, len(h.rooms[client.roomID]))
}

// unregisterClient removes a client from a room.
func (h *Hub) unregisterClient(client *Client) {
	if clients, ok := h.rooms[client.roomID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)

			if len(clients) == 0 {
				delete(h.rooms, client.roomID)
			}

			log.Printf("Client %s unregistered from room %s (remaining clients: %d)",
				client.playerID, client.roomID, len(clients))
		}
	}
}

// fanOut delivers a message to its room, honoring the player filter.
func (h *Hub) fanOut(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal broadcast message: %v", err)
		return
	}

	clients, ok := h.rooms[message.RoomID]
	if !ok {
		return
	}
	for client := range clients {
		if message.targetPlayerID != "" && client.playerID != message.targetPlayerID {
			continue
		}
		select {
		case client.send <- data:
		default:
			// Client's send channel is full, close it
			h.unregisterClient(client)
		}
	}
}

// readPump pumps messages from the WebSocket connection to the hub.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Incoming traffic is not processed; plays go through the REST API.
		// Reading just keeps the connection alive.
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the WebSocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current WebSocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
