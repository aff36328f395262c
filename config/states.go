package config

// StateID names a controller state. Animation sets are keyed by it.
type StateID int

const (
	StateNone StateID = iota
	Standing
	Walking
	Falling
	Jumping
	Idle
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Standing:  "standing",
	Walking:   "walking",
	Falling:   "falling",
	Jumping:   "jumping",
	Idle:      "idle",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Airborne reports whether the state has left the ground.
func (s StateID) Airborne() bool {
	return s == Falling || s == Jumping
}
