package domain

import "context"

type Platform string

const (
	Telegram Platform = "telegram"
	Discord  Platform = "discord"
)

type Author string

const (
	User   Author = "user"
	System Author = "system"
)

type Prompt struct {
	Prompt string
	Author Author
	Model  string
}

// Message is an incoming chat message, normalized across platforms. IDs are kept in the platform's own textual
// form and converted back by the sender adapters.
type Message struct {
	Platform Platform
	ID       string
	ChatID   string
	AuthorID string
	Username string
	Text     string
}

type ModelResponse struct {
	Response string
	Metadata ResponseMetadata
}

type ResponseMetadata struct {
	Model            string
	CompletionTokens int
	TotalTokens      int
}

// Replier sends a text reply to a message on the message's own platform.
type Replier interface {
	SendMessageReply(ctx context.Context, message *Message, text string) error
}

// Context is the only channel through which a command reaches the outside world.
type Context struct {
	Message *Message
	replier Replier
}

func NewContext(message *Message, replier Replier) *Context {
	return &Context{Message: message, replier: replier}
}

// Reply answers the message that triggered the command.
func (c *Context) Reply(ctx context.Context, text string) error {
	return c.replier.SendMessageReply(ctx, c.Message, text)
}
