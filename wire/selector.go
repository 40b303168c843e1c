package wire

import (
	"errors"

	"github.com/tinylobby/sv"
)

// Games holds every game variant, keyed by class name.
var Games = new(sv.Registry).MustRegister(
	sv.ClassOf[NTacToe](),
	sv.ClassOf[RedDots](),
	sv.ClassOf[Twelves](),
)

// GameSelector picks the game class named by the input's "name" field.
var GameSelector = Games.Selector("name")

// ErrUnknownGame is returned by NewGame when no variant matches the name.
var ErrUnknownGame = errors.New("wire: unknown game")

// NewGame instantiates whichever game the input describes. input may be JSON
// text or an already decoded object.
func NewGame(input any) (Game, error) {
	data, err := sv.Decode(input)
	if err != nil {
		return nil, err
	}
	cls := GameSelector(data)
	if cls == nil {
		return nil, ErrUnknownGame
	}
	v, err := sv.Instantiate(data, cls)
	if err != nil {
		return nil, err
	}
	g, ok := v.(Game)
	if !ok {
		return nil, ErrUnknownGame
	}
	return g, nil
}

// LobbySnapshot is the full state a client receives on joining.
type LobbySnapshot struct {
	ID    string `json:"id"`
	Chat  *Chat  `json:"chat"`
	Games []Game `json:"games"`
}

func (*LobbySnapshot) New() sv.Schematized {
	return &LobbySnapshot{Chat: NewChat(), Games: []Game{}}
}

func (*LobbySnapshot) ClassName() string { return "LobbySnapshot" }

func (*LobbySnapshot) Schema() sv.Schema {
	return sv.Props(
		sv.Prop("id", sv.String),
		sv.Prop("chat", sv.ClassOf[Chat]()),
		sv.ArrayOf("games", GameSelector),
	)
}

// FindGame returns the game with the given id.
func (l *LobbySnapshot) FindGame(id string) Game {
	for _, g := range l.Games {
		if g.Base().ID == id {
			return g
		}
	}
	return nil
}
