package sv_test

import "github.com/tinylobby/sv"

type fooBar struct {
	Foo string `json:"foo"`
}

func (*fooBar) ClassName() string { return "FooBar" }
func (*fooBar) Schema() sv.Schema { return sv.Props(sv.Prop("foo", sv.String)) }

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (*point) ClassName() string { return "Point" }
func (*point) Schema() sv.Schema {
	return sv.Props(sv.Prop("x", sv.Number), sv.Prop("y", sv.Number))
}

// shape is the polymorphic field type used by drawing.
type shape interface {
	sv.Schematized
	Area() float64
}

type circle struct {
	Kind   string  `json:"kind"`
	Center *point  `json:"center"`
	Radius float64 `json:"radius"`
}

func (*circle) ClassName() string { return "Circle" }
func (*circle) Schema() sv.Schema {
	return sv.Props(
		sv.Prop("kind", sv.String),
		sv.Prop("center", sv.ClassOf[point]()),
		sv.Prop("radius", sv.Number),
	)
}
func (c *circle) Area() float64 { return 3 * c.Radius * c.Radius }

type rect struct {
	Kind    string   `json:"kind"`
	Corners []*point `json:"corners"`
}

func (*rect) ClassName() string { return "Rect" }
func (*rect) Schema() sv.Schema {
	return sv.Props(
		sv.Prop("kind", sv.String),
		sv.ArrayOf("corners", sv.ClassOf[point]()),
	)
}
func (r *rect) Area() float64 {
	if len(r.Corners) < 2 {
		return 0
	}
	return (r.Corners[1].X - r.Corners[0].X) * (r.Corners[1].Y - r.Corners[0].Y)
}

var shapes = sv.OneOf("kind", sv.ClassOf[circle](), sv.ClassOf[rect]())

type drawing struct {
	Title  string  `json:"title"`
	Shapes []shape `json:"shapes"`
	Extra  any     `json:"extra"`
	Hidden bool    `sv:"name=hidden"`
}

func (*drawing) ClassName() string { return "Drawing" }
func (*drawing) Schema() sv.Schema {
	return sv.Props(
		sv.Prop("title", sv.String),
		sv.ArrayOf("shapes", shapes),
		sv.Untyped("extra"),
		sv.Prop("hidden", sv.Boolean),
	)
}

// tagged has an array of primitives, which the engine refuses.
type tagged struct {
	Tags []string `json:"tags"`
}

func (*tagged) ClassName() string { return "Tagged" }
func (*tagged) Schema() sv.Schema { return sv.Props(sv.ArrayOf("tags", sv.String)) }

// node is recursive through its children.
type node struct {
	Name     string  `json:"name"`
	Children []*node `json:"children"`
}

func (*node) ClassName() string { return "Node" }
func (*node) Schema() sv.Schema {
	return sv.Props(
		sv.Prop("name", sv.String),
		sv.ArrayOf("children", sv.ClassOf[node]()),
	)
}

type user struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
}

func (*user) ClassName() string { return "User" }
func (*user) Schema() sv.Schema {
	return sv.Props(sv.Prop("userid", sv.String), sv.Prop("username", sv.String))
}
