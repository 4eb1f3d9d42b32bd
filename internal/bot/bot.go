package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// commandRegistrar is the part of a Discord session used to register
// global commands.
type commandRegistrar interface {
	ApplicationCommandBulkOverwrite(
		appID string,
		guildID string,
		commands []*discordgo.ApplicationCommand,
		options ...discordgo.RequestOption,
	) ([]*discordgo.ApplicationCommand, error)
}

// Bot manages the Discord session and feeds its events to the dispatcher.
type Bot struct {
	config     *Config
	session    *discordgo.Session
	registry   *Registry
	dispatcher *Dispatcher

	// ctx is the parent context for every dispatched command.
	ctx context.Context
}

// NewBot creates a new Bot instance over a frozen registry.
func NewBot(cfg *Config, registry *Registry, dispatcher *Dispatcher) *Bot {
	return &Bot{
		config:     cfg,
		registry:   registry,
		dispatcher: dispatcher,
		ctx:        context.Background(),
	}
}

// Start connects to Discord and registers commands globally. Any error is
// fatal: the bot must not serve events it could not register.
func (b *Bot) Start(ctx context.Context) error {
	b.ctx = ctx

	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	b.session = session
	b.session.Identify.Intents = intents(b.config.Prefix)

	b.session.AddHandler(b.handleInteraction)
	if b.config.Prefix != "" {
		b.session.AddHandler(b.handleMessage)
	}

	// Open connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register commands
	if err := registerCommands(b.session, b.session.State.User.ID, b.registry); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
		"modules", b.registry.Modules(),
		"prefix", b.config.Prefix,
	)

	return nil
}

// Stop closes the Discord session and waits for running commands to finish.
func (b *Bot) Stop() error {
	var err error
	if b.session != nil {
		err = b.session.Close()
	}

	// discordgo handlers may still be running after Close
	b.dispatcher.Stop()

	return err
}

// intents returns the gateway intents the bot needs. Message content is
// privileged and only requested when prefix commands are enabled.
func intents(prefix string) discordgo.Intent {
	i := discordgo.IntentsAllWithoutPrivileged
	if prefix != "" {
		i |= discordgo.IntentMessageContent
	}
	return i
}

// registerCommands replaces the global slash commands with those in the
// registry.
func registerCommands(r commandRegistrar, appID string, registry *Registry) error {
	commands := registry.ApplicationCommands()
	if commands == nil {
		commands = []*discordgo.ApplicationCommand{}
	}

	// Empty guild ID registers commands globally
	registered, err := r.ApplicationCommandBulkOverwrite(appID, "", commands)
	if err != nil {
		return err
	}

	for _, cmd := range registered {
		slog.Debug("registered command", "command", cmd.Name, "id", cmd.ID)
	}
	slog.Info("registered commands", "count", len(registered))

	return nil
}

// handleInteraction routes incoming slash commands to the dispatcher.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ev, ok := interactionEvent(i)
	if !ok {
		return
	}

	ev.Responder = NewInteractionResponder(s, i.Interaction)
	b.dispatcher.Submit(b.ctx, ev)
}

// handleMessage routes incoming prefix commands to the dispatcher.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself
	if s.State != nil && s.State.User != nil && m.Author != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ev, ok := messageEvent(m, b.config.Prefix)
	if !ok {
		return
	}

	ev.Responder = NewChannelResponder(s, m.ChannelID)
	b.dispatcher.Submit(b.ctx, ev)
}
