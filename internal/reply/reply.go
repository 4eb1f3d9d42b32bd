package reply

import "fmt"

// Reply is what a command handler wants sent back to the caller.
// It is either a Text or an Embed.
type Reply interface {
	isReply()
}

// Text is a plain message reply.
type Text struct {
	Body string
}

func (Text) isReply() {}

// Embed is a rich reply with an optional set of component rows.
type Embed struct {
	Title       string
	Description string
	Color       Color
	// Ephemeral only has meaning for slash command replies.
	Ephemeral bool
	Rows      []ActionRow
}

func (Embed) isReply() {}

// ActionRow is an ordered row of buttons rendered beneath an embed.
type ActionRow struct {
	Buttons []Button
}

// ButtonStyle selects how a button is rendered and what its target means.
type ButtonStyle int

const (
	// Link buttons open Target, which must be an absolute URL.
	Link ButtonStyle = iota
	Primary
	Secondary
	Success
	Danger
)

func (s ButtonStyle) String() string {
	switch s {
	case Link:
		return "link"
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Success:
		return "success"
	case Danger:
		return "danger"
	default:
		return fmt.Sprintf("ButtonStyle(%d)", int(s))
	}
}

// Button is a single interactive component.
// Target is a URL for Link buttons and a custom ID for every other style.
type Button struct {
	Label  string
	Style  ButtonStyle
	Target string
}

// Color is a 24-bit RGB accent color.
type Color uint32

// RGB packs the three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Int returns the color in the integer form Discord expects.
func (c Color) Int() int {
	return int(c & 0xFFFFFF)
}
