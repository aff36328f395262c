package factory

import (
	"fmt"

	"github.com/automoto/slimehop/actors"
	cfg "github.com/automoto/slimehop/config"
)

// GenerateAnimations builds a fresh set of animation clocks for a sheet key
// (e.g. "player", "slime") from the definitions in config.
func GenerateAnimations(key string) actors.AnimationSet {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		// configuration error, fail loudly
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}
	return actors.NewAnimationSet(defs)
}
