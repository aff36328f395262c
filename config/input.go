package config

import "strings"

// Command is a logical input token consumed by the simulation.
type Command uint8

const (
	CommandJump Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandCount // Must be last - used for bitset sizing
)

var commandNames = [CommandCount]string{
	CommandJump:      "Jump",
	CommandMoveLeft:  "MoveLeft",
	CommandMoveRight: "MoveRight",
}

func (c Command) String() string {
	if c < CommandCount {
		return commandNames[c]
	}
	return "Unknown"
}

// ParseCommand maps a token such as "MoveLeft" to its Command.
// Matching is case-insensitive.
func ParseCommand(token string) (Command, bool) {
	for c, name := range commandNames {
		if strings.EqualFold(name, token) {
			return Command(c), true
		}
	}
	return 0, false
}

// CommandSet holds the commands active during one fixed step.
type CommandSet uint8

// NewCommandSet builds a set from string tokens. Unknown tokens are ignored.
func NewCommandSet(tokens ...string) CommandSet {
	var s CommandSet
	for _, tok := range tokens {
		if c, ok := ParseCommand(tok); ok {
			s = s.With(c)
		}
	}
	return s
}

func (s CommandSet) Has(c Command) bool {
	return s&(1<<c) != 0
}

func (s CommandSet) With(c Command) CommandSet {
	return s | 1<<c
}

// Tokens lists the active commands in declaration order.
func (s CommandSet) Tokens() []string {
	var out []string
	for c := Command(0); c < CommandCount; c++ {
		if s.Has(c) {
			out = append(out, c.String())
		}
	}
	return out
}
