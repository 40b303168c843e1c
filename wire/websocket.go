package wire

import (
	"bytes"
	"fmt"
	"slices"

	json "github.com/goccy/go-json"

	"github.com/tinylobby/sv"
)

// Action names what a WebSocketMessage asks the other side to do.
type Action string

const (
	ActionNone        Action = ""
	ActionChat        Action = "chat"
	ActionLobby       Action = "lobby"
	ActionReplaceGame Action = "replace_game"
	ActionUpdateGame  Action = "update_game"
	ActionGameMove    Action = "game_move"
	ActionUsername    Action = "username"
)

// Actions lists every action a peer may send.
var Actions = []Action{
	ActionNone, ActionChat, ActionLobby, ActionReplaceGame, ActionUpdateGame, ActionGameMove, ActionUsername,
}

// Valid reports whether a is one of Actions.
func (a Action) Valid() bool { return slices.Contains(Actions, a) }

// WebSocketMessage is the envelope for everything sent over the lobby socket.
// Payload carries a nested JSON document whose shape depends on Action.
type WebSocketMessage struct {
	Action  Action `json:"action"`
	LobbyID string `json:"lobby_id"`
	GameID  string `json:"game_id"`
	Payload string `json:"payload"`
}

func (*WebSocketMessage) ClassName() string { return "WebSocketMessage" }

func (*WebSocketMessage) Schema() sv.Schema {
	return sv.Props(
		sv.Prop("action", sv.String),
		sv.Prop("lobby_id", sv.String),
		sv.Prop("game_id", sv.String),
		sv.Prop("payload", sv.String),
	)
}

// ParseWebSocketMessage instantiates a message from raw socket data and rejects
// unknown actions.
func ParseWebSocketMessage(data any) (*WebSocketMessage, error) {
	m, err := sv.ToClass(data, &WebSocketMessage{})
	if err != nil {
		return nil, err
	}
	if !m.Action.Valid() {
		return nil, fmt.Errorf("wire: unknown action %q", m.Action)
	}
	return m, nil
}

// Pretty renders the message for logs with the payload indented. A payload
// that is not JSON is shown verbatim.
func (m *WebSocketMessage) Pretty() string {
	payload := m.Payload
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(m.Payload), "", "  "); err == nil {
		payload = buf.String()
	}
	return fmt.Sprintf("action: %q, lobby_id: %q, game_id: %q, payload: \n%s", m.Action, m.LobbyID, m.GameID, payload)
}
