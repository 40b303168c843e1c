package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinylobby/sv"
	"github.com/tinylobby/sv/wire"
)

func TestNTacToe_RoundTrip(t *testing.T) {
	g := wire.NewNTacToe("g1", 5, 4)
	require.True(t, g.AddPlayer(wire.NewUser("1", "Alice")))
	require.False(t, g.AddPlayer(wire.NewUser("1", "Alice")))
	require.True(t, g.AddPlayer(wire.NewUser("2", "Bob")))
	require.False(t, g.AddPlayer(wire.NewUser("3", "Carol")))
	g.Moves = append(g.Moves, &wire.NTacToeMove{S: "X", R: 1, C: 2})

	s, err := sv.ToString(g)
	require.NoError(t, err)
	require.Equal(t, `{"id":"g1","name":"NTacToe","players":[{"userid":"1","username":"Alice"},{"userid":"2","username":"Bob"}],"n":5,"t":4,"moves":[{"s":"X","r":1,"c":2}]}`, s)

	back, err := wire.NewGame(s)
	require.NoError(t, err)
	require.Equal(t, g, back)
}

func TestNTacToeMove_RejectsFractionalRow(t *testing.T) {
	_, err := sv.ToClass(`{"s":"X","r":1.5,"c":0}`, &wire.NTacToeMove{})
	require.Equal(t, sv.CodeTypeMismatch, sv.IssueCode(err))
}

func TestTwelves_DropsSizeFields(t *testing.T) {
	require.Equal(t, []string{"id", "name", "players", "moves"}, (&wire.Twelves{}).Schema().Names())
	g := wire.NewTwelves("t1")
	s, err := sv.ToString(g)
	require.NoError(t, err)
	require.Equal(t, `{"id":"t1","name":"Twelves","players":[],"moves":[]}`, s)
}

func TestRedDots_Click(t *testing.T) {
	g := wire.NewRedDots("r1", 640, 480)
	g.Click(10, 20.5)
	s, err := sv.ToString(g)
	require.NoError(t, err)
	require.Equal(t, `{"id":"r1","name":"RedDots","players":[],"width":640,"height":480,"dots":[{"x":10,"y":20.5}]}`, s)

	back, err := wire.NewGame(s)
	require.NoError(t, err)
	require.IsType(t, &wire.RedDots{}, back)
	require.Equal(t, g, back)
}

func TestNewGame_UnknownName(t *testing.T) {
	_, err := wire.NewGame(`{"id":"x","name":"Chess","players":[]}`)
	require.ErrorIs(t, err, wire.ErrUnknownGame)

	_, err = wire.NewGame(`{"id":"x"}`)
	require.ErrorIs(t, err, wire.ErrUnknownGame)

	_, err = wire.NewGame(`{"id":`)
	require.Equal(t, sv.CodeParseError, sv.IssueCode(err))
}

func TestLobbySnapshot_PolymorphicGames(t *testing.T) {
	lobby := &wire.LobbySnapshot{
		ID:   "5678",
		Chat: wire.NewChat(),
		Games: []wire.Game{
			wire.NewNTacToe("foo", 3, 3),
			wire.NewRedDots("bar", 100, 100),
		},
	}
	s, err := sv.ToString(lobby)
	require.NoError(t, err)

	back, err := sv.ToClass(s, &wire.LobbySnapshot{})
	require.NoError(t, err)
	require.Len(t, back.Games, 2)
	require.IsType(t, &wire.NTacToe{}, back.Games[0])
	require.IsType(t, &wire.RedDots{}, back.Games[1])
	require.Same(t, back.Games[0], back.FindGame("foo"))
	require.Nil(t, back.FindGame("baz"))

	cp, err := sv.Copy(back)
	require.NoError(t, err)
	require.NotSame(t, back.Games[0], cp.Games[0])
	require.Equal(t, back, cp)
}

func TestLobbySnapshot_UnknownGameFails(t *testing.T) {
	in := `{"id":"1","chat":{"messages":[],"users":[]},"games":[{"id":"a","name":"RedDots","players":[],"width":1,"height":1,"dots":[]},{"id":"b","name":"Chess"}]}`
	err := sv.Validate(in, &wire.LobbySnapshot{})
	iss, ok := sv.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, sv.CodeSelectorNoMatch, iss[0].Code)
	require.Equal(t, "/games/1", iss[0].Path)
}

func TestGames_Registry(t *testing.T) {
	require.Equal(t, []string{"NTacToe", "RedDots", "Twelves"}, wire.Games.Names())
	cls, ok := wire.Games.Lookup("Twelves")
	require.True(t, ok)
	require.Equal(t, "Twelves", cls.Name())

	schema, err := sv.JSONSchema(sv.ClassOf[wire.LobbySnapshot]())
	require.NoError(t, err)
	require.Equal(t, []string{"id", "chat", "games"}, schema.PropertyOrder)
	require.Equal(t, "array", schema.Properties["games"].Type)

	chat, err := sv.JSONSchema(sv.ClassOf[wire.Chat]())
	require.NoError(t, err)
	require.Equal(t, "User", chat.Properties["users"].Items.Title)
}

func TestClasses_DefaultInstancesRoundTrip(t *testing.T) {
	for _, name := range wire.Classes.Names() {
		t.Run(name, func(t *testing.T) {
			cls, ok := wire.Classes.Lookup(name)
			require.True(t, ok)
			inst := cls()

			s, err := sv.ToString(inst)
			require.NoError(t, err)

			cp, err := sv.Copy(inst)
			require.NoError(t, err)
			cs, err := sv.ToString(cp)
			require.NoError(t, err)
			require.Equal(t, s, cs)

			back, err := sv.Instantiate(s, cls)
			require.NoError(t, err)
			bs, err := sv.ToString(back)
			require.NoError(t, err)
			require.Equal(t, s, bs)
		})
	}
}

func TestLobbySnapshot_ZeroValueGame(t *testing.T) {
	l := &wire.LobbySnapshot{Chat: &wire.Chat{}, Games: []wire.Game{&wire.NTacToe{BaseGame: wire.BaseGame{Name: "NTacToe"}}}}
	s, err := sv.ToString(l)
	require.NoError(t, err)
	require.Equal(t, `{"id":"","chat":{"messages":[],"users":[]},"games":[{"id":"","name":"NTacToe","players":[],"n":0,"t":0,"moves":[]}]}`, s)

	cp, err := sv.Copy(l)
	require.NoError(t, err)
	require.NotNil(t, cp.Games[0].Base().Players)
}
