package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

// stubRegistrar is a test double for commandRegistrar
type stubRegistrar struct {
	appID    string
	guildID  string
	commands []*discordgo.ApplicationCommand
	calls    int
	err      error
}

func (r *stubRegistrar) ApplicationCommandBulkOverwrite(
	appID string,
	guildID string,
	commands []*discordgo.ApplicationCommand,
	_ ...discordgo.RequestOption,
) ([]*discordgo.ApplicationCommand, error) {
	r.calls++
	r.appID = appID
	r.guildID = guildID
	r.commands = commands
	if r.err != nil {
		return nil, r.err
	}
	return commands, nil
}

func TestNewBot(t *testing.T) {
	cfg := &Config{
		DiscordToken: "test-token",
	}

	b := NewBot(cfg, nil, nil)

	if b == nil {
		t.Fatal("expected bot to be created, got nil")
	}
	if b.config != cfg {
		t.Error("expected config to be stored")
	}
}

func TestRegisterCommands_Globally(t *testing.T) {
	reg, err := NewRegistry(&stubModule{name: "test", commands: []Command{
		stubCommand("age", SlashCommand|PrefixCommand),
		stubCommand("legacy", PrefixCommand),
		stubCommand("help", SlashCommand),
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	registrar := &stubRegistrar{}

	if err := registerCommands(registrar, "app-1", reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if registrar.calls != 1 {
		t.Errorf("expected a single registration call, got %d", registrar.calls)
	}
	if registrar.appID != "app-1" {
		t.Errorf("expected app ID %q, got %q", "app-1", registrar.appID)
	}
	if registrar.guildID != "" {
		t.Errorf("expected global registration, got guild %q", registrar.guildID)
	}
	if len(registrar.commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(registrar.commands))
	}
}

func TestRegisterCommands_ReturnsError(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectedErr := errors.New("registration failed")
	registrar := &stubRegistrar{err: expectedErr}

	err = registerCommands(registrar, "app-1", reg)
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if registrar.commands == nil {
		t.Error("expected an empty, non-nil command list to clear stale commands")
	}
}

func TestIntents(t *testing.T) {
	if intents("~")&discordgo.IntentMessageContent == 0 {
		t.Error("expected message content intent when prefix is set")
	}
	if intents("")&discordgo.IntentMessageContent != 0 {
		t.Error("expected no message content intent without prefix")
	}
}

// 2020-01-01T00:00:00Z as a Discord snowflake.
const aliceID = "661720242585600000"

func TestNewUser_CreationTimeFromSnowflake(t *testing.T) {
	u := newUser(&discordgo.User{ID: aliceID, Username: "alice", GlobalName: "Alice"})

	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if !u.CreatedAt.Equal(want) {
		t.Errorf("expected created at %v, got %v", want, u.CreatedAt)
	}
	if u.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", u.CreatedAt.Location())
	}
	if u.DisplayName != "Alice" {
		t.Errorf("expected display name %q, got %q", "Alice", u.DisplayName)
	}
}

func TestNewUser_FallsBackToUsername(t *testing.T) {
	u := newUser(&discordgo.User{ID: "not-a-snowflake", Username: "bob"})

	if u.DisplayName != "bob" {
		t.Errorf("expected display name %q, got %q", "bob", u.DisplayName)
	}
	if !u.CreatedAt.IsZero() {
		t.Errorf("expected zero creation time for invalid ID, got %v", u.CreatedAt)
	}
}

func TestInteractionEvent_SlashCommand(t *testing.T) {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:      discordgo.InteractionApplicationCommand,
		ChannelID: "chan-1",
		Member: &discordgo.Member{
			User: &discordgo.User{ID: aliceID, GlobalName: "Alice"},
		},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "age",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: "123"},
				{Name: "reason", Type: discordgo.ApplicationCommandOptionString, Value: "curious"},
				{Name: "count", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
			},
			Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
				Users: map[string]*discordgo.User{
					"123": {ID: "123", Username: "bob"},
				},
			},
		},
	}}

	ev, ok := interactionEvent(i)
	if !ok {
		t.Fatal("expected event")
	}

	if ev.CommandName != "age" || ev.Kind != SlashCommand || ev.ChannelID != "chan-1" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.Invoker.DisplayName != "Alice" {
		t.Errorf("expected invoker %q, got %q", "Alice", ev.Invoker.DisplayName)
	}
	target, ok := ev.Arguments["user"].(User)
	if !ok || target.DisplayName != "bob" {
		t.Errorf("expected resolved user bob, got %+v", ev.Arguments["user"])
	}
	if ev.Arguments["reason"] != "curious" {
		t.Errorf("expected reason %q, got %v", "curious", ev.Arguments["reason"])
	}
	if ev.Arguments["count"] != int64(3) {
		t.Errorf("expected count 3, got %v", ev.Arguments["count"])
	}
}

func TestInteractionEvent_DirectMessageUsesUser(t *testing.T) {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		User: &discordgo.User{ID: aliceID, Username: "alice"},
		Data: discordgo.ApplicationCommandInteractionData{Name: "help"},
	}}

	ev, ok := interactionEvent(i)
	if !ok {
		t.Fatal("expected event")
	}
	if ev.Invoker.ID != aliceID {
		t.Errorf("expected invoker %q, got %q", aliceID, ev.Invoker.ID)
	}
}

func TestInteractionEvent_IgnoresOtherTypes(t *testing.T) {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
	}}

	if _, ok := interactionEvent(i); ok {
		t.Error("expected component interaction to be ignored")
	}
}

func TestMessageEvent(t *testing.T) {
	m := &discordgo.MessageCreate{Message: &discordgo.Message{
		Content:   "~age <@123>",
		ChannelID: "chan-1",
		Author:    &discordgo.User{ID: aliceID, Username: "alice"},
		Mentions:  []*discordgo.User{{ID: "123", Username: "bob"}},
	}}

	ev, ok := messageEvent(m, "~")
	if !ok {
		t.Fatal("expected event")
	}
	if ev.CommandName != "age" || ev.Kind != PrefixCommand || ev.ChannelID != "chan-1" {
		t.Errorf("unexpected event: %+v", ev)
	}
	target, ok := ev.Arguments["user"].(User)
	if !ok || target.ID != "123" {
		t.Errorf("expected mentioned user, got %+v", ev.Arguments["user"])
	}
}

func TestMessageEvent_Ignored(t *testing.T) {
	tests := []struct {
		name string
		msg  *discordgo.Message
	}{
		{"bot author", &discordgo.Message{Content: "~age", Author: &discordgo.User{Bot: true}}},
		{"no prefix", &discordgo.Message{Content: "age", Author: &discordgo.User{}}},
		{"no author", &discordgo.Message{Content: "~age"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := messageEvent(&discordgo.MessageCreate{Message: tt.msg}, "~"); ok {
				t.Error("expected message to be ignored")
			}
		})
	}
}

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		content string
		prefix  string
		name    string
		args    int
		ok      bool
	}{
		{"~age", "~", "age", 0, true},
		{"~age <@1> extra", "~", "age", 2, true},
		{"!!help", "!!", "help", 0, true},
		{"~ age", "~", "", 0, false},
		{"~", "~", "", 0, false},
		{"age", "~", "", 0, false},
		{"~age", "", "", 0, false},
		{"hello ~age", "~", "", 0, false},
		{"~\u0085\u00a2age", "~", "", 0, false},
		{"🐟age", "🐟", "age", 0, true},
	}

	for _, tt := range tests {
		name, args, ok := ParsePrefix(tt.content, tt.prefix)
		if ok != tt.ok || name != tt.name || len(args) != tt.args {
			t.Errorf("ParsePrefix(%q, %q) = %q, %v, %v; want %q, %d args, %v",
				tt.content, tt.prefix, name, args, ok, tt.name, tt.args, tt.ok)
		}
	}
}
