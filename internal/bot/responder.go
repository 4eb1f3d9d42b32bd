package bot

import (
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/fishbot/internal/reply"
)

// Responder sends a reply back to where a command came from.
// This interface enables testing handlers without a live Discord connection.
type Responder interface {
	// Respond builds the reply and sends it.
	Respond(r reply.Reply) error
}

// InteractionResponder answers a slash command interaction.
type InteractionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

// NewInteractionResponder creates a new InteractionResponder.
func NewInteractionResponder(s *discordgo.Session, i *discordgo.Interaction) *InteractionResponder {
	return &InteractionResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends the reply as the interaction response.
func (r *InteractionResponder) Respond(rep reply.Reply) error {
	msg, err := reply.Build(rep)
	if err != nil {
		return err
	}
	return r.session.InteractionRespond(r.interaction, msg.InteractionResponse())
}

// ChannelResponder answers a prefix command with a regular channel message.
type ChannelResponder struct {
	session   *discordgo.Session
	channelID string
}

// NewChannelResponder creates a new ChannelResponder.
func NewChannelResponder(s *discordgo.Session, channelID string) *ChannelResponder {
	return &ChannelResponder{
		session:   s,
		channelID: channelID,
	}
}

// Respond sends the reply to the channel. The ephemeral flag is ignored.
func (r *ChannelResponder) Respond(rep reply.Reply) error {
	msg, err := reply.Build(rep)
	if err != nil {
		return err
	}
	_, err = r.session.ChannelMessageSendComplex(r.channelID, msg.MessageSend())
	return err
}

// MockResponder is a test double for Responder.
type MockResponder struct {
	mu        sync.Mutex
	Replies   []reply.Reply
	LastReply reply.Reply
	Err       error
}

// Respond records the reply for testing. The reply is built first so that
// invalid replies fail the same way they would against Discord.
func (m *MockResponder) Respond(r reply.Reply) error {
	if _, err := reply.Build(r); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Replies = append(m.Replies, r)
	m.LastReply = r
	return m.Err
}

// Count returns how many replies were recorded.
func (m *MockResponder) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Replies)
}
