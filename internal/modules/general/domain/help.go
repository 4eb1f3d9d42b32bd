package domain

// HelpPage is the static content shown by the help command.
type HelpPage struct {
	Title       string
	Description string
	LinkLabel   string
	LinkURL     string
}

// ProjectURL is where the bot's source lives.
const ProjectURL = "https://github.com/sglre6355/fishbot"

// NewHelpPage returns the help page. Keep the command list in sync with the
// commands the general module registers.
func NewHelpPage() *HelpPage {
	return &HelpPage{
		Title: "fishbot help",
		Description: "Commands work as slash commands or with the text prefix.\n\n" +
			"`/age [user]` shows when an account was created\n" +
			"`/help` shows this message\n" +
			"`/fishproof` proves, beyond doubt, that fish exist",
		LinkLabel: "Source",
		LinkURL:   ProjectURL,
	}
}
