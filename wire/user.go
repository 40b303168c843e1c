// Package wire declares the message and game shapes exchanged between the
// lobby server and its clients. Every type is schematized, so it can be
// validated with sv.Instantiate and serialized canonically with sv.ToString.
package wire

import "github.com/tinylobby/sv"

// User identifies a participant.
type User struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
}

// NewUser returns a User with the given id and display name.
func NewUser(userid, username string) *User {
	return &User{UserID: userid, Username: username}
}

func (*User) ClassName() string { return "User" }

func (*User) Schema() sv.Schema {
	return sv.Props(
		sv.Prop("userid", sv.String),
		sv.Prop("username", sv.String),
	)
}

// AuthObject is what a client presents when joining a lobby.
type AuthObject struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
	LobbyID  string `json:"lobby_id"`
}

func (*AuthObject) ClassName() string { return "AuthObject" }

func (*AuthObject) Schema() sv.Schema {
	return (&User{}).Schema().With(sv.Prop("lobby_id", sv.String))
}

// User returns the identity part of the auth object.
func (a *AuthObject) User() *User { return NewUser(a.UserID, a.Username) }
