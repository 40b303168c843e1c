package wire

import "github.com/tinylobby/sv"

// Classes holds every type of this package, keyed by class name. Tools that
// take a class by name (the sv CLI) resolve it here.
var Classes = new(sv.Registry).MustRegister(
	sv.ClassOf[User](),
	sv.ClassOf[AuthObject](),
	sv.ClassOf[Message](),
	sv.ClassOf[Chat](),
	sv.ClassOf[WebSocketMessage](),
	sv.ClassOf[NTacToeMove](),
	sv.ClassOf[NTacToe](),
	sv.ClassOf[Twelves](),
	sv.ClassOf[XY](),
	sv.ClassOf[RedDots](),
	sv.ClassOf[LobbySnapshot](),
)
