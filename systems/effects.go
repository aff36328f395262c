package systems

import (
	"github.com/automoto/slimehop/components"
	"github.com/yohamta/donburi"
)

// UpdateEffects advances coin pops and removes the finished ones.
func UpdateEffects(w donburi.World, dtMs float64) {
	var finished []donburi.Entity

	for e := range components.Pop.Iter(w) {
		pop := components.Pop.Get(e)
		value, done := pop.Rise.Update(float32(dtMs))
		pop.Value = float64(value)
		if done {
			pop.Done = true
			finished = append(finished, e.Entity())
		}
	}

	for _, id := range finished {
		w.Remove(id)
	}
}
