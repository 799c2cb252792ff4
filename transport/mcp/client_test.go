package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"room_id":  "room1",
		"finished": false,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["room_id"] != expectedResponse["room_id"] {
		t.Errorf("Expected room_id %v, got %v", expectedResponse["room_id"], response["room_id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_GameErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "it is not your turn",
			"code":  "NOT_YOUR_TURN",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("POST", "/api/rooms/room1/play", map[string]string{}, nil)
	if err == nil {
		t.Fatal("Expected error for HTTP 400 response")
	}

	if !strings.Contains(err.Error(), "NOT_YOUR_TURN") {
		t.Errorf("Expected error code in message, got: %v", err)
	}
}

func TestClient_handleGameState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" || r.URL.Path != "/api/rooms/room1/state" {
			t.Errorf("Expected GET /api/rooms/room1/state, got %s %s", r.Method, r.URL.Path)
		}

		state := engine.PublicState{
			RoomID:          "room1",
			Mode:            engine.ModeBase,
			CurrentPlayerID: "p1",
			TurnDeadline:    time.Date(2025, 10, 31, 20, 0, 0, 0, time.UTC),
			DeckCount:       40,
			Players: []engine.PublicPlayer{
				{ID: "p1", Name: "ana", HandCount: 3},
				{ID: "p2", Name: "bob", HandCount: 3},
			},
			History: []string{"ana placed a red organ"},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(state)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_state",
			Arguments: map[string]interface{}{"room_id": "room1"},
		},
	}

	result, err := client.handleGameState(context.Background(), request)
	if err != nil {
		t.Fatalf("handleGameState failed: %v", err)
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	for _, want := range []string{"room1", "ana", "bob", "Deck: 40", "ana placed a red organ"} {
		if !strings.Contains(text.Text, want) {
			t.Errorf("Expected %q in result, got: %s", want, text.Text)
		}
	}
}

func TestClient_handlePlayCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/rooms/room1/play" {
			t.Errorf("Expected POST /api/rooms/room1/play, got %s %s", r.Method, r.URL.Path)
		}

		var req struct {
			PlayerID string        `json:"player_id"`
			CardID   string        `json:"card_id"`
			Target   engine.Target `json:"target"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.PlayerID != "p1" || req.CardID != "virus_red_0" {
			t.Errorf("request: %+v", req)
		}
		if req.Target.PlayerID != "p2" || req.Target.OrganID != "organ_red_0" {
			t.Errorf("target: %+v", req.Target)
		}

		state := engine.PublicState{RoomID: "room1", CurrentPlayerID: "p2"}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(state)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "play_card",
			Arguments: map[string]interface{}{
				"room_id":          "room1",
				"player_id":        "p1",
				"card_id":          "virus_red_0",
				"target_player_id": "p2",
				"organ_id":         "organ_red_0",
			},
		},
	}

	result, err := client.handlePlayCard(context.Background(), request)
	if err != nil {
		t.Fatalf("handlePlayCard failed: %v", err)
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	if !strings.Contains(text.Text, "Card played") {
		t.Errorf("Expected confirmation, got: %s", text.Text)
	}
}

func TestClient_handlePlayerHand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rooms/room1/hand" || r.URL.Query().Get("player") != "p1" {
			t.Errorf("unexpected request: %s %s", r.URL.Path, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"hand": []engine.Card{
				{ID: "organ_red_0", Kind: engine.KindOrgan, Color: engine.ColorRed},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "player_hand",
			Arguments: map[string]interface{}{"room_id": "room1", "player_id": "p1"},
		},
	}

	result, err := client.handlePlayerHand(context.Background(), request)
	if err != nil {
		t.Fatalf("handlePlayerHand failed: %v", err)
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	if !strings.Contains(text.Text, "organ_red_0") {
		t.Errorf("Expected card ID in result, got: %s", text.Text)
	}
}

func TestFormatPublicState_Winner(t *testing.T) {
	state := &engine.PublicState{
		RoomID:          "room1",
		CurrentPlayerID: "p1",
		Finished:        true,
		Winner:          "p1",
	}

	result := formatPublicState(state)

	if !strings.Contains(result, "Winner: p1") {
		t.Errorf("Expected winner line, got: %s", result)
	}
}

func TestFormatPublicState_Aborted(t *testing.T) {
	state := &engine.PublicState{
		RoomID:          "room1",
		CurrentPlayerID: "p1",
		Finished:        true,
	}

	result := formatPublicState(state)

	if !strings.Contains(result, "aborted") {
		t.Errorf("Expected aborted line, got: %s", result)
	}
}

func TestFormatHand_Empty(t *testing.T) {
	result := formatHand("p1", nil)

	if !strings.Contains(result, "(empty)") {
		t.Errorf("Expected empty marker, got: %s", result)
	}
}
