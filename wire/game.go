package wire

import "github.com/tinylobby/sv"

// Game is implemented by every game variant. The shared fields live in the
// embedded BaseGame.
type Game interface {
	sv.Schematized
	Base() *BaseGame
}

// BaseGame holds what all games share. Name carries the variant's class name
// and is what GameSelector dispatches on.
type BaseGame struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Players []*User `json:"players"`
}

// Base returns the shared part of a game.
func (g *BaseGame) Base() *BaseGame { return g }

// BaseSchema declares the fields of BaseGame; variants extend it.
func BaseSchema() sv.Schema {
	return sv.Props(
		sv.Prop("id", sv.String),
		sv.Prop("name", sv.String),
		sv.ArrayOf("players", sv.ClassOf[User]()),
	)
}

// MaxPlayers is the seat count of every game.
const MaxPlayers = 2

// AddPlayer seats user unless already seated or the game is full.
func (g *BaseGame) AddPlayer(user *User) bool {
	if g.HasPlayer(user.UserID) || len(g.Players) >= MaxPlayers {
		return false
	}
	g.Players = append(g.Players, user)
	return true
}

// HasPlayer reports whether userid is seated.
func (g *BaseGame) HasPlayer(userid string) bool {
	for _, p := range g.Players {
		if p.UserID == userid {
			return true
		}
	}
	return false
}

// NTacToeMove places symbol S at row R, column C.
type NTacToeMove struct {
	S string `json:"s"`
	R int    `json:"r"`
	C int    `json:"c"`
}

func (*NTacToeMove) New() sv.Schematized { return &NTacToeMove{S: "X"} }

func (*NTacToeMove) ClassName() string { return "NTacToeMove" }

func (*NTacToeMove) Schema() sv.Schema {
	return sv.Props(
		sv.Prop("s", sv.String),
		sv.Prop("r", sv.Number),
		sv.Prop("c", sv.Number),
	)
}

// NTacToe is n-by-n tic-tac-toe needing t in a row.
type NTacToe struct {
	BaseGame
	N     int            `json:"n"`
	T     int            `json:"t"`
	Moves []*NTacToeMove `json:"moves"`
}

// NewNTacToe returns an empty board of size n needing t in a row.
func NewNTacToe(id string, n, t int) *NTacToe {
	g := &NTacToe{N: n, T: t, Moves: []*NTacToeMove{}}
	g.ID, g.Name, g.Players = id, g.ClassName(), []*User{}
	return g
}

// New returns the default 5x5 board needing 4 in a row.
func (*NTacToe) New() sv.Schematized { return NewNTacToe("", 5, 4) }

func (*NTacToe) ClassName() string { return "NTacToe" }

func (*NTacToe) Schema() sv.Schema {
	return BaseSchema().With(
		sv.Prop("n", sv.Number),
		sv.Prop("t", sv.Number),
		sv.ArrayOf("moves", sv.ClassOf[NTacToeMove]()),
	)
}

// Twelves plays on a fixed board, so it drops the size fields of NTacToe.
type Twelves struct {
	BaseGame
	Moves []*NTacToeMove `json:"moves"`
}

// NewTwelves returns an empty game.
func NewTwelves(id string) *Twelves {
	g := &Twelves{Moves: []*NTacToeMove{}}
	g.ID, g.Name, g.Players = id, g.ClassName(), []*User{}
	return g
}

func (*Twelves) New() sv.Schematized { return NewTwelves("") }

func (*Twelves) ClassName() string { return "Twelves" }

func (*Twelves) Schema() sv.Schema {
	return (&NTacToe{}).Schema().Without("n", "t")
}

// XY is a point on the canvas.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (*XY) ClassName() string { return "XY" }

func (*XY) Schema() sv.Schema {
	return sv.Props(
		sv.Prop("x", sv.Number),
		sv.Prop("y", sv.Number),
	)
}

// RedDots is a shared canvas players click dots onto.
type RedDots struct {
	BaseGame
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Dots   []*XY   `json:"dots"`
}

// NewRedDots returns an empty canvas of the given size.
func NewRedDots(id string, width, height float64) *RedDots {
	g := &RedDots{Width: width, Height: height, Dots: []*XY{}}
	g.ID, g.Name, g.Players = id, g.ClassName(), []*User{}
	return g
}

func (*RedDots) New() sv.Schematized { return NewRedDots("", 0, 0) }

func (*RedDots) ClassName() string { return "RedDots" }

func (*RedDots) Schema() sv.Schema {
	return BaseSchema().With(
		sv.Prop("width", sv.Number),
		sv.Prop("height", sv.Number),
		sv.ArrayOf("dots", sv.ClassOf[XY]()),
	)
}

// Click records a dot at (x, y).
func (g *RedDots) Click(x, y float64) {
	g.Dots = append(g.Dots, &XY{X: x, Y: y})
}
