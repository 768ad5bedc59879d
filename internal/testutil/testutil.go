package testutil

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a Telegram user for handler tests
func NewTestUser(id int64, username string) *tele.User {
	return &tele.User{
		ID:        id,
		Username:  username,
		FirstName: "Alice",
		LastName:  "Smith",
	}
}

// FakeContext implements the slice of telebot's Context the handlers
// touch and records every outbound reply. The embedded interface is nil,
// so any call outside that slice panics and flags the test.
type FakeContext struct {
	tele.Context

	user *tele.User
	text string

	// Sent holds every payload passed to Send, in order.
	Sent []interface{}

	// Responded counts callback acknowledgements.
	Responded int

	sendErr error
}

// NewFakeContext builds a context for one inbound text message.
func NewFakeContext(user *tele.User, text string) *FakeContext {
	return &FakeContext{user: user, text: text}
}

func (c *FakeContext) Sender() *tele.User { return c.user }

func (c *FakeContext) Text() string { return c.text }

func (c *FakeContext) Update() tele.Update { return tele.Update{} }

func (c *FakeContext) Send(what interface{}, _ ...interface{}) error {
	if c.sendErr != nil {
		err := c.sendErr
		c.sendErr = nil
		return err
	}
	c.Sent = append(c.Sent, what)
	return nil
}

func (c *FakeContext) Respond(_ ...*tele.CallbackResponse) error {
	c.Responded++
	return nil
}

// FailNextSend makes the next Send call return err instead of recording.
func (c *FakeContext) FailNextSend(err error) {
	c.sendErr = err
}

// Texts returns the string replies in send order.
func (c *FakeContext) Texts() []string {
	var out []string
	for _, sent := range c.Sent {
		if s, ok := sent.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// LastText returns the most recent string reply, or "" if none was sent.
func (c *FakeContext) LastText() string {
	texts := c.Texts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

// Documents returns the document replies in send order.
func (c *FakeContext) Documents() []*tele.Document {
	var out []*tele.Document
	for _, sent := range c.Sent {
		if d, ok := sent.(*tele.Document); ok {
			out = append(out, d)
		}
	}
	return out
}
