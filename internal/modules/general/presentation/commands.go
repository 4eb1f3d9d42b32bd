package presentation

import "github.com/bwmarrin/discordgo"

// Command names.
const (
	CmdAge       = "age"
	CmdHelp      = "help"
	CmdFishProof = "fishproof"
)

// OptUser is the optional user argument of the age command.
const OptUser = "user"

// AgeOptions returns the slash command options for the age command.
func AgeOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        OptUser,
			Description: "Selected user (defaults to you)",
			Required:    false,
		},
	}
}
