package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Virus! Card Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Virus! Card Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Be the first player with four healthy organs of distinct colors. An organ is
healthy while it carries no virus; a vaccinated or immune organ still counts.

TURN STRUCTURE:
On your turn play one card or discard one to three cards. Your hand refills
to three and the turn passes. If the turn timer expires a random card is
discarded for you.

CARD TYPES:
- Organ: place on your own board, one per color
- Virus: attack an organ of a matching color (a second virus destroys it)
- Medicine: protect an organ of a matching color (a second one makes it immune)
- Treatment: special effects (transplant, thief, contagion, gloves, ...)

AVAILABLE TOOLS:
- list_rooms: List joinable public rooms
- game_state: Get the public snapshot of a room's game
- player_hand: Get a player's private hand
- play_card: Play a card from a hand, with an optional target
- draw_card: Draw up to the hand limit
- discard_cards: Discard one to three cards and end the turn

NOTE: play_card targets depend on the card. Viruses and medicines need
target_player_id and organ_id; treatments have their own fields. The error
code in a failed response tells you what was wrong (NOT_YOUR_TURN,
COLOR_MISMATCH, IMMUNE_ORGAN, ...).`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_rooms",
		Description: "List all joinable public rooms",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListRooms)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the public game state of a room: boards, deck counts, whose turn it is and the turn deadline",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"room_id": map[string]interface{}{
					"type":        "string",
					"description": "Room ID",
				},
			},
			Required: []string{"room_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "player_hand",
		Description: "Get the private hand of a player in a room",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"room_id": map[string]interface{}{
					"type":        "string",
					"description": "Room ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "Player ID",
				},
			},
			Required: []string{"room_id", "player_id"},
		},
	}, c.handlePlayerHand)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_card",
		Description: "Play a card from a player's hand. Organs need no target. Viruses and medicines need target_player_id and organ_id. Treatments take the fields their effect needs.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"room_id": map[string]interface{}{
					"type":        "string",
					"description": "Room ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "Player ID",
				},
				"card_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the card to play",
				},
				"target_player_id": map[string]interface{}{
					"type":        "string",
					"description": "Player the card is aimed at (viruses, medicines, transplant, thief, medical error)",
				},
				"organ_id": map[string]interface{}{
					"type":        "string",
					"description": "Organ on the target player's board",
				},
				"second_player_id": map[string]interface{}{
					"type":        "string",
					"description": "Owner of the other organ in a transplant (may be the acting player)",
				},
				"second_organ_id": map[string]interface{}{
					"type":        "string",
					"description": "The other organ in a transplant",
				},
				"replace_organ_id": map[string]interface{}{
					"type":        "string",
					"description": "Organ to replace when playing a mutant organ on a full board",
				},
				"action": map[string]interface{}{
					"type":        "string",
					"description": "Face of a failed experiment: virus or medicine",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"description": "Rotation of a body swap: clockwise or counter-clockwise",
				},
				"pairs": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"source_organ_id": map[string]interface{}{
								"type":        "string",
								"description": "Infected organ on the acting player's board",
							},
							"target_player_id": map[string]interface{}{
								"type":        "string",
								"description": "Player receiving the virus",
							},
							"target_organ_id": map[string]interface{}{
								"type":        "string",
								"description": "Organ receiving the virus",
							},
						},
					},
					"description": "Virus routing for contagion: one pair per virus to spread",
				},
			},
			Required: []string{"room_id", "player_id", "card_id"},
		},
	}, c.handlePlayCard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "draw_card",
		Description: "Draw cards up to the hand limit of three",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"room_id": map[string]interface{}{
					"type":        "string",
					"description": "Room ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "Player ID",
				},
			},
			Required: []string{"room_id", "player_id"},
		},
	}, c.handleDrawCard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "discard_cards",
		Description: "Discard one to three cards instead of playing, ending the turn",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"room_id": map[string]interface{}{
					"type":        "string",
					"description": "Room ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "Player ID",
				},
				"card_ids": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "IDs of the cards to discard (1 to 3)",
				},
			},
			Required: []string{"room_id", "player_id", "card_ids"},
		},
	}, c.handleDiscardCards)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			if code, ok := errResp["code"]; ok {
				return fmt.Errorf("%s: %s", code, msg)
			}
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

type roomInfo struct {
	ID         string   `json:"id"`
	HostID     string   `json:"host_id"`
	InProgress bool     `json:"in_progress"`
	PlayerIDs  []string `json:"player_ids"`
}

func (c *Client) handleListRooms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int        `json:"count"`
		Rooms []roomInfo `json:"rooms"`
	}

	err := c.apiCall("GET", "/api/rooms", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Public Rooms (%d):\n\n", response.Count)
	for _, r := range response.Rooms {
		status := "waiting"
		if r.InProgress {
			status = "in progress"
		}
		result += fmt.Sprintf("- %s (host: %s, players: %d, %s)\n",
			r.ID, r.HostID, len(r.PlayerIDs), status)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomID, _ := args["room_id"].(string)

	var state engine.PublicState
	err := c.apiCall("GET", fmt.Sprintf("/api/rooms/%s/state", roomID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatPublicState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlayerHand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomID, _ := args["room_id"].(string)
	playerID, _ := args["player_id"].(string)

	var response struct {
		Hand []engine.Card `json:"hand"`
	}
	err := c.apiCall("GET", fmt.Sprintf("/api/rooms/%s/hand?player=%s", roomID, playerID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHand(playerID, response.Hand)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomID, _ := args["room_id"].(string)
	playerID, _ := args["player_id"].(string)
	cardID, _ := args["card_id"].(string)

	target := map[string]interface{}{}
	if v, ok := args["target_player_id"]; ok {
		target["player_id"] = v
	}
	for _, key := range []string{"organ_id", "second_player_id", "second_organ_id", "replace_organ_id", "action", "direction", "pairs"} {
		if v, ok := args[key]; ok {
			target[key] = v
		}
	}

	body := map[string]interface{}{
		"player_id": playerID,
		"card_id":   cardID,
		"target":    target,
	}

	var state engine.PublicState
	err := c.apiCall("POST", fmt.Sprintf("/api/rooms/%s/play", roomID), body, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "✓ Card played\n\n" + formatPublicState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDrawCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomID, _ := args["room_id"].(string)
	playerID, _ := args["player_id"].(string)

	body := map[string]interface{}{"player_id": playerID}

	var response struct {
		Hand []engine.Card `json:"hand"`
	}
	err := c.apiCall("POST", fmt.Sprintf("/api/rooms/%s/draw", roomID), body, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "✓ Drew cards\n\n" + formatHand(playerID, response.Hand)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDiscardCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomID, _ := args["room_id"].(string)
	playerID, _ := args["player_id"].(string)
	idsRaw, _ := args["card_ids"].([]interface{})

	cardIDs := make([]string, 0, len(idsRaw))
	for _, v := range idsRaw {
		if id, ok := v.(string); ok {
			cardIDs = append(cardIDs, id)
		}
	}

	body := map[string]interface{}{
		"player_id": playerID,
		"card_ids":  cardIDs,
	}

	var state engine.PublicState
	err := c.apiCall("POST", fmt.Sprintf("/api/rooms/%s/discard", roomID), body, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("✓ Discarded %d card(s)\n\n%s", len(cardIDs), formatPublicState(&state))
	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatPublicState(state *engine.PublicState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Room: %s | Mode: %s | Deck: %d | Discard: %d\n",
		state.RoomID, state.Mode, state.DeckCount, state.DiscardCount))
	b.WriteString(fmt.Sprintf("Turn: %s (deadline %s)\n",
		state.CurrentPlayerID, state.TurnDeadline.Format("15:04:05")))
	if state.DiscardTop != nil {
		b.WriteString(fmt.Sprintf("Discard top: %s\n", state.DiscardTop.Label()))
	}
	if state.Pending != nil {
		b.WriteString(fmt.Sprintf("Pending: %s must resolve %s\n",
			state.Pending.PlayerID, state.Pending.CardID))
	}
	b.WriteString("\n")

	for _, p := range state.Players {
		marker := " "
		if p.ID == state.CurrentPlayerID {
			marker = "▶"
		}
		b.WriteString(fmt.Sprintf("%s %s (%s) hand: %d\n", marker, p.Name, p.ID, p.HandCount))
		if p.SkipNextTurn {
			b.WriteString("  (skips next turn)\n")
		}
		if len(p.Board) == 0 {
			b.WriteString("  board: empty\n")
		}
		for _, slot := range p.Board {
			line := fmt.Sprintf("  %s [%s]", slot.Organ.Label(), slot.Organ.ID)
			for _, att := range slot.Attached {
				line += fmt.Sprintf(" + %s", att.Label())
			}
			b.WriteString(line + "\n")
		}
	}

	if state.Finished {
		if state.Winner != "" {
			b.WriteString(fmt.Sprintf("\n🎉 Winner: %s", state.Winner))
		} else {
			b.WriteString("\n💀 Match aborted")
		}
	}

	if len(state.History) > 0 {
		b.WriteString("\nLast action: " + state.History[0])
	}

	return b.String()
}

func formatHand(playerID string, hand []engine.Card) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Hand of %s (%d cards):\n", playerID, len(hand)))
	for _, card := range hand {
		b.WriteString(fmt.Sprintf("- %s [%s]\n", card.Label(), card.ID))
	}
	if len(hand) == 0 {
		b.WriteString("(empty)\n")
	}
	return b.String()
}
