package bot

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Kind is the way a command was invoked. Kinds can be combined into a set
// with bitwise OR.
type Kind uint8

const (
	// SlashCommand is a platform-parsed interaction with named arguments.
	SlashCommand Kind = 1 << iota
	// PrefixCommand is a text message starting with the command prefix.
	PrefixCommand
)

// Has reports whether every kind in other is also in k.
func (k Kind) Has(other Kind) bool {
	return other != 0 && k&other == other
}

func (k Kind) String() string {
	var parts []string
	if k&SlashCommand != 0 {
		parts = append(parts, "slash")
	}
	if k&PrefixCommand != 0 {
		parts = append(parts, "prefix")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Handler runs a command. It sends its reply through r and returns an error
// if the command or the send failed.
type Handler func(ctx context.Context, data *Data, inv *Invocation, r Responder) error

// Command describes a single command known to the bot.
type Command struct {
	// Name is the unique, case-sensitive command name.
	Name string

	// Description is shown by Discord for slash commands.
	Description string

	// Kinds is the set of ways the command may be invoked.
	Kinds Kind

	// Options are the slash command arguments registered with Discord.
	Options []*discordgo.ApplicationCommandOption

	Handler Handler
}

// ApplicationCommand returns the slash command definition sent to Discord.
func (c Command) ApplicationCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// User identifies a Discord account.
type User struct {
	ID          string
	DisplayName string
	CreatedAt   time.Time
}

// Invocation carries everything a handler knows about one command call.
type Invocation struct {
	Command   string
	Kind      Kind
	Invoker   User
	ChannelID string
	Arguments map[string]any
}

// UserArg returns the user argument with the given name.
func (inv *Invocation) UserArg(name string) (User, bool) {
	u, ok := inv.Arguments[name].(User)
	return u, ok
}

// StringArg returns the string argument with the given name.
func (inv *Invocation) StringArg(name string) (string, bool) {
	s, ok := inv.Arguments[name].(string)
	return s, ok
}

// Event is an inbound command call received from the gateway.
type Event struct {
	CommandName string
	Kind        Kind
	Invoker     User
	ChannelID   string
	Arguments   map[string]any

	// Responder carries the reply back to where the event came from.
	Responder Responder
}
