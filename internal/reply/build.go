package reply

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/bwmarrin/discordgo"
	embed "github.com/leighmacdonald/discordgo-embed"
)

var (
	ErrUnknownReply  = errors.New("unknown reply type")
	ErrInvalidButton = errors.New("invalid button")
	ErrEmptyRow      = errors.New("action row has no buttons")
)

// Message is the wire form of a Reply. It can be rendered either as an
// interaction response or as a plain channel message.
type Message struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Ephemeral  bool
}

// Build converts a Reply into its wire form. It has no side effects and the
// same Reply always yields an equal Message.
func Build(r Reply) (Message, error) {
	switch r := r.(type) {
	case Text:
		return Message{Content: r.Body}, nil
	case *Text:
		if r == nil {
			return Message{}, ErrUnknownReply
		}
		return Build(*r)
	case Embed:
		return buildEmbed(r)
	case *Embed:
		if r == nil {
			return Message{}, ErrUnknownReply
		}
		return buildEmbed(*r)
	default:
		return Message{}, fmt.Errorf("%w: %T", ErrUnknownReply, r)
	}
}

func buildEmbed(e Embed) (Message, error) {
	msgEmbed := embed.NewEmbed().
		SetTitle(e.Title).
		SetColor(e.Color.Int()).
		MessageEmbed
	// SetDescription cuts at 2048 bytes; the description is passed through
	// whole and length limits are left to Discord.
	msgEmbed.Description = e.Description

	msg := Message{
		Embeds:    []*discordgo.MessageEmbed{msgEmbed},
		Ephemeral: e.Ephemeral,
	}

	for rowIdx, row := range e.Rows {
		if len(row.Buttons) == 0 {
			return Message{}, fmt.Errorf("row %d: %w", rowIdx, ErrEmptyRow)
		}
		actionsRow := discordgo.ActionsRow{
			Components: make([]discordgo.MessageComponent, 0, len(row.Buttons)),
		}
		for btnIdx, btn := range row.Buttons {
			component, err := buildButton(btn)
			if err != nil {
				return Message{}, fmt.Errorf("row %d button %d: %w", rowIdx, btnIdx, err)
			}
			actionsRow.Components = append(actionsRow.Components, component)
		}
		msg.Components = append(msg.Components, actionsRow)
	}

	return msg, nil
}

func buildButton(btn Button) (discordgo.Button, error) {
	if btn.Label == "" {
		return discordgo.Button{}, fmt.Errorf("%w: empty label", ErrInvalidButton)
	}

	switch btn.Style {
	case Link:
		if !isAbsoluteURL(btn.Target) {
			return discordgo.Button{}, fmt.Errorf("%w: link target %q is not a URL", ErrInvalidButton, btn.Target)
		}
		return discordgo.Button{
			Label: btn.Label,
			Style: discordgo.LinkButton,
			URL:   btn.Target,
		}, nil
	case Primary, Secondary, Success, Danger:
		if btn.Target == "" {
			return discordgo.Button{}, fmt.Errorf("%w: empty custom id", ErrInvalidButton)
		}
		return discordgo.Button{
			Label:    btn.Label,
			Style:    discordStyle(btn.Style),
			CustomID: btn.Target,
		}, nil
	default:
		return discordgo.Button{}, fmt.Errorf("%w: style %s", ErrInvalidButton, btn.Style)
	}
}

func discordStyle(s ButtonStyle) discordgo.ButtonStyle {
	switch s {
	case Primary:
		return discordgo.PrimaryButton
	case Success:
		return discordgo.SuccessButton
	case Danger:
		return discordgo.DangerButton
	default:
		return discordgo.SecondaryButton
	}
}

func isAbsoluteURL(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// InteractionResponse renders the message as a reply to a slash command.
func (m Message) InteractionResponse() *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Content:    m.Content,
		Embeds:     m.Embeds,
		Components: m.Components,
	}
	if m.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// MessageSend renders the message for a regular channel send.
// Channel messages cannot be ephemeral, so the flag is dropped.
func (m Message) MessageSend() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content:    m.Content,
		Embeds:     m.Embeds,
		Components: m.Components,
	}
}
