package bot

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
)

// userArgument is the argument name under which a prefix command receives
// its first mentioned user.
const userArgument = "user"

// ParsePrefix splits a prefix command message into the command name and its
// arguments. It reports false if the content does not start with prefix or
// names no command. An empty prefix never matches.
func ParsePrefix(content, prefix string) (string, []string, bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	rest := strings.TrimPrefix(content, prefix)
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", nil, false
	}

	// Require the name to follow the prefix directly, as in "~age".
	if !strings.HasPrefix(rest, fields[0]) {
		return "", nil, false
	}

	return fields[0], fields[1:], true
}

// newUser converts a Discord user. The account creation time is derived
// from the user's snowflake ID.
func newUser(u *discordgo.User) User {
	if u == nil {
		return User{}
	}

	displayName := u.GlobalName
	if displayName == "" {
		displayName = u.Username
	}

	return User{
		ID:          u.ID,
		DisplayName: displayName,
		CreatedAt:   createdAt(u.ID),
	}
}

func createdAt(id string) time.Time {
	sf, err := snowflake.Parse(id)
	if err != nil {
		return time.Time{}
	}
	return sf.Time().UTC()
}

// interactionEvent converts a slash command interaction into an Event.
// It reports false for any other interaction type.
func interactionEvent(i *discordgo.InteractionCreate) (Event, bool) {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionApplicationCommand {
		return Event{}, false
	}

	data := i.ApplicationCommandData()

	var invoker *discordgo.User
	if i.Member != nil && i.Member.User != nil {
		invoker = i.Member.User
	} else {
		invoker = i.User
	}

	return Event{
		CommandName: data.Name,
		Kind:        SlashCommand,
		Invoker:     newUser(invoker),
		ChannelID:   i.ChannelID,
		Arguments:   optionArguments(data),
	}, true
}

func optionArguments(data discordgo.ApplicationCommandInteractionData) map[string]any {
	args := make(map[string]any, len(data.Options))

	for _, opt := range data.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionUser:
			id, _ := opt.Value.(string)
			var resolved *discordgo.User
			if data.Resolved != nil {
				resolved = data.Resolved.Users[id]
			}
			if resolved == nil {
				resolved = &discordgo.User{ID: id}
			}
			args[opt.Name] = newUser(resolved)
		case discordgo.ApplicationCommandOptionString:
			args[opt.Name] = opt.StringValue()
		case discordgo.ApplicationCommandOptionInteger:
			args[opt.Name] = opt.IntValue()
		case discordgo.ApplicationCommandOptionBoolean:
			args[opt.Name] = opt.BoolValue()
		default:
			args[opt.Name] = opt.Value
		}
	}

	return args
}

// messageEvent converts a prefix command message into an Event.
// Messages from bots, including this one, are ignored.
func messageEvent(m *discordgo.MessageCreate, prefix string) (Event, bool) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return Event{}, false
	}

	name, _, ok := ParsePrefix(m.Content, prefix)
	if !ok {
		return Event{}, false
	}

	args := map[string]any{}
	if len(m.Mentions) > 0 {
		args[userArgument] = newUser(m.Mentions[0])
	}

	return Event{
		CommandName: name,
		Kind:        PrefixCommand,
		Invoker:     newUser(m.Author),
		ChannelID:   m.ChannelID,
		Arguments:   args,
	}, true
}
