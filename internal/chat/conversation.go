package chat

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"LawHub_LegalAssistant/internal/flight"

	"go.uber.org/zap"
)

const Greeting = "Hello! I'm LawBot, your AI legal assistant. I can help you understand laws, regulations, " +
	"and legal procedures in different countries. What legal question can I help you with today?"

var ErrEmptyMessage = errors.New("message is empty")

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Message struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is one client's chat page. Only one reply can be pending at a time.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
	nextID   int

	responder Responder
	gate      *flight.Gate
	delay     time.Duration
	now       func() time.Time
	log       *zap.Logger
}

func NewConversation(responder Responder, delay time.Duration, log *zap.Logger) *Conversation {
	c := &Conversation{
		responder: responder,
		gate:      flight.NewGate(),
		delay:     delay,
		now:       time.Now,
		log:       log,
	}
	c.append(SenderBot, Greeting)
	return c
}

func (c *Conversation) append(sender Sender, text string) Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	m := Message{ID: c.nextID, Text: text, Sender: sender, Timestamp: c.now()}
	c.messages = append(c.messages, m)
	return m
}

// Send posts a user message and waits for the bot's reply.
func (c *Conversation) Send(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}
	var reply Message
	err := c.gate.Do(func() error {
		c.append(SenderUser, text)
		if err := flight.Wait(ctx, c.delay); err != nil {
			c.log.Debug("Reply abandoned", zap.Error(err))
			return err
		}
		reply = c.append(SenderBot, c.responder.Reply(text))
		return nil
	})
	return reply, err
}

func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages)
}

// Typing reports whether a reply is pending.
func (c *Conversation) Typing() bool {
	return c.gate.Busy()
}
