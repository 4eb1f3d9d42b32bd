package bot

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

var (
	ErrDuplicateCommand = errors.New("duplicate command name")
	ErrInvalidCommand   = errors.New("invalid command")
)

// Module groups related commands.
type Module interface {
	// Name returns the unique identifier for this module.
	Name() string

	// Commands returns the commands this module provides, in order.
	Commands() []Command
}

// Registry is the frozen set of commands known to the bot.
// It is built once by NewRegistry and never modified, so it is safe for
// concurrent use without locking.
type Registry struct {
	commands []Command
	byName   map[string]int
	modules  []string
}

// NewRegistry builds a registry from the commands of the given modules,
// keeping module order and the order in which each module lists its commands.
// It fails if a command is malformed or if two commands share a name.
func NewRegistry(modules ...Module) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]int),
	}
	owners := make(map[string]string)

	for _, mod := range modules {
		r.modules = append(r.modules, mod.Name())

		for _, cmd := range mod.Commands() {
			if err := validateCommand(cmd); err != nil {
				return nil, fmt.Errorf("module %s: %w", mod.Name(), err)
			}
			if owner, exists := owners[cmd.Name]; exists {
				return nil, fmt.Errorf("%w: %q registered by %s and %s",
					ErrDuplicateCommand, cmd.Name, owner, mod.Name())
			}

			owners[cmd.Name] = mod.Name()
			r.byName[cmd.Name] = len(r.commands)
			r.commands = append(r.commands, cmd)
		}
	}

	return r, nil
}

func validateCommand(cmd Command) error {
	switch {
	case cmd.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidCommand)
	case cmd.Kinds&(SlashCommand|PrefixCommand) == 0:
		return fmt.Errorf("%w: %q has no invocation kinds", ErrInvalidCommand, cmd.Name)
	case cmd.Handler == nil:
		return fmt.Errorf("%w: %q has no handler", ErrInvalidCommand, cmd.Name)
	}
	return nil
}

// All returns a copy of every command in registration order.
func (r *Registry) All() []Command {
	result := make([]Command, len(r.commands))
	copy(result, r.commands)
	return result
}

// Modules returns the names of the modules the registry was built from.
func (r *Registry) Modules() []string {
	result := make([]string, len(r.modules))
	copy(result, r.modules)
	return result
}

// Lookup finds the command with exactly the given name that accepts kind.
func (r *Registry) Lookup(name string, kind Kind) (Command, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Command{}, false
	}

	cmd := r.commands[idx]
	if !cmd.Kinds.Has(kind) {
		return Command{}, false
	}

	return cmd, true
}

// ApplicationCommands returns the slash command definitions to register
// with Discord, in registration order.
func (r *Registry) ApplicationCommands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	for _, cmd := range r.commands {
		if cmd.Kinds.Has(SlashCommand) {
			commands = append(commands, cmd.ApplicationCommand())
		}
	}
	return commands
}
