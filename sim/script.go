package sim

import (
	"fmt"

	"github.com/automoto/slimehop/config"
	"gopkg.in/yaml.v3"
)

// ScriptEntry holds a set of commands for a number of fixed steps.
type ScriptEntry struct {
	Hold  []string `yaml:"hold"`
	Steps int      `yaml:"steps"`
}

// Script is a recorded input sequence for headless runs:
//
//	entries:
//	  - hold: [MoveRight]
//	    steps: 30
//	  - hold: [MoveRight, Jump]
//	    steps: 4
type Script struct {
	Entries []ScriptEntry `yaml:"entries"`
}

// ParseScript decodes a YAML script and rejects unknown command tokens.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, e := range s.Entries {
		if e.Steps < 0 {
			return nil, fmt.Errorf("script entry %d: steps must not be negative, got %d", i, e.Steps)
		}
		for _, tok := range e.Hold {
			if _, ok := config.ParseCommand(tok); !ok {
				return nil, fmt.Errorf("script entry %d: unknown command %q", i, tok)
			}
		}
	}
	return &s, nil
}

// Len is the number of steps the script covers.
func (s *Script) Len() int {
	n := 0
	for _, e := range s.Entries {
		n += e.Steps
	}
	return n
}

// Source returns an InputSource that replays the script one step per call,
// then holds nothing.
func (s *Script) Source() InputSource {
	sets := make([]config.CommandSet, len(s.Entries))
	for i, e := range s.Entries {
		sets[i] = config.NewCommandSet(e.Hold...)
	}

	entry, used := 0, 0
	return func() config.CommandSet {
		for entry < len(s.Entries) && used >= s.Entries[entry].Steps {
			entry++
			used = 0
		}
		if entry >= len(s.Entries) {
			return 0
		}
		used++
		return sets[entry]
	}
}
