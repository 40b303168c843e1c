package wire

import (
	"time"

	"github.com/tinylobby/sv"
)

// Message is one chat line. Timestamp is in Unix milliseconds.
type Message struct {
	User      *User  `json:"user"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

// NewMessage stamps a message with the current time.
func NewMessage(user *User, body string) *Message {
	return &Message{User: user, Body: body, Timestamp: time.Now().UnixMilli()}
}

// New returns a message with an empty, non-nil user.
func (*Message) New() sv.Schematized { return &Message{User: &User{}} }

func (*Message) ClassName() string { return "Message" }

func (*Message) Schema() sv.Schema {
	return sv.Props(
		sv.Prop("user", sv.ClassOf[User]()),
		sv.Prop("body", sv.String),
		sv.Prop("timestamp", sv.Number),
	)
}

// Chat is the message history of a lobby plus everyone who has spoken.
type Chat struct {
	Messages []*Message `json:"messages"`
	Users    []*User    `json:"users"`
}

// NewChat returns an empty chat.
func NewChat() *Chat {
	return &Chat{Messages: []*Message{}, Users: []*User{}}
}

func (*Chat) New() sv.Schematized { return NewChat() }

func (*Chat) ClassName() string { return "Chat" }

func (*Chat) Schema() sv.Schema {
	return sv.Props(
		sv.ArrayOf("messages", sv.ClassOf[Message]()),
		sv.ArrayOf("users", sv.ClassOf[User]()),
	)
}

// Add appends a message from the given user, recording the user on first
// appearance.
func (c *Chat) Add(username, userid, body string) *Message {
	u := NewUser(userid, username)
	if !c.HasUser(userid) {
		c.Users = append(c.Users, u)
	}
	m := NewMessage(u, body)
	c.Messages = append(c.Messages, m)
	return m
}

// HasUser reports whether userid has posted in the chat.
func (c *Chat) HasUser(userid string) bool {
	for _, u := range c.Users {
		if u.UserID == userid {
			return true
		}
	}
	return false
}
