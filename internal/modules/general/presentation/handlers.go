package presentation

import (
	"context"

	"github.com/sglre6355/fishbot/internal/bot"
	"github.com/sglre6355/fishbot/internal/modules/general/application"
	"github.com/sglre6355/fishbot/internal/reply"
)

// helpColor is the accent color of the help embed.
var helpColor = reply.RGB(0x2E, 0x86, 0xC1)

// AgeHandler handles the age command.
type AgeHandler struct {
	interactor *application.AgeInteractor
}

// NewAgeHandler creates a new AgeHandler.
func NewAgeHandler() *AgeHandler {
	return &AgeHandler{
		interactor: application.NewAgeInteractor(),
	}
}

// Handle replies with the account creation time of the user argument, or of
// the invoker when the argument is absent.
func (h *AgeHandler) Handle(
	_ context.Context,
	_ *bot.Data,
	inv *bot.Invocation,
	r bot.Responder,
) error {
	invoker := account(inv.Invoker)

	var target *application.Account
	if u, ok := inv.UserArg(OptUser); ok {
		a := account(u)
		target = &a
	}

	result := h.interactor.Execute(invoker, target)

	return r.Respond(reply.Text{Body: result.Message()})
}

func account(u bot.User) application.Account {
	return application.Account{
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

// HelpHandler handles the help command.
type HelpHandler struct {
	interactor *application.HelpInteractor
}

// NewHelpHandler creates a new HelpHandler.
func NewHelpHandler() *HelpHandler {
	return &HelpHandler{
		interactor: application.NewHelpInteractor(),
	}
}

// Handle replies with the help embed and a link to the project.
func (h *HelpHandler) Handle(
	_ context.Context,
	_ *bot.Data,
	_ *bot.Invocation,
	r bot.Responder,
) error {
	page := h.interactor.Execute()

	return r.Respond(reply.Embed{
		Title:       page.Title,
		Description: page.Description,
		Color:       helpColor,
		Ephemeral:   true,
		Rows: []reply.ActionRow{
			{Buttons: []reply.Button{
				{Label: page.LinkLabel, Style: reply.Link, Target: page.LinkURL},
			}},
		},
	})
}

// FishProofHandler handles the fishproof command.
type FishProofHandler struct {
	interactor *application.FishProofInteractor
}

// NewFishProofHandler creates a new FishProofHandler.
func NewFishProofHandler() *FishProofHandler {
	return &FishProofHandler{
		interactor: application.NewFishProofInteractor(),
	}
}

// Handle replies with the proof text.
func (h *FishProofHandler) Handle(
	_ context.Context,
	_ *bot.Data,
	_ *bot.Invocation,
	r bot.Responder,
) error {
	return r.Respond(reply.Text{Body: h.interactor.Execute()})
}
