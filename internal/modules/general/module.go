package general

import (
	"github.com/sglre6355/fishbot/internal/bot"
	"github.com/sglre6355/fishbot/internal/modules/general/presentation"
)

// Compile-time interface check.
var _ bot.Module = (*GeneralModule)(nil)

// GeneralModule provides the age, help and fishproof commands.
type GeneralModule struct {
	ageHandler       *presentation.AgeHandler
	helpHandler      *presentation.HelpHandler
	fishProofHandler *presentation.FishProofHandler
}

// New creates the module.
func New() *GeneralModule {
	return &GeneralModule{
		ageHandler:       presentation.NewAgeHandler(),
		helpHandler:      presentation.NewHelpHandler(),
		fishProofHandler: presentation.NewFishProofHandler(),
	}
}

// Name returns the module name.
func (m *GeneralModule) Name() string {
	return "general"
}

// Commands returns the commands for this module.
func (m *GeneralModule) Commands() []bot.Command {
	return []bot.Command{
		{
			Name:        presentation.CmdAge,
			Description: "Displays your or another user's account creation date",
			Kinds:       bot.SlashCommand | bot.PrefixCommand,
			Options:     presentation.AgeOptions(),
			Handler:     m.ageHandler.Handle,
		},
		{
			Name:        presentation.CmdHelp,
			Description: "Shows what this bot can do",
			Kinds:       bot.SlashCommand | bot.PrefixCommand,
			Handler:     m.helpHandler.Handle,
		},
		{
			Name:        presentation.CmdFishProof,
			Description: "Proves that fish exist",
			Kinds:       bot.SlashCommand | bot.PrefixCommand,
			Handler:     m.fishProofHandler.Handle,
		},
	}
}
