package card

// Effect is a side effect requested by a transition. The machine never
// performs effects itself; the host runs them against its services.
type Effect interface {
	effect()
}

// PlayMusic asks the audio service to start the looping track. Failure is
// expected on some platforms and must be ignored.
type PlayMusic struct{}

// PauseMusic asks the audio service to pause the track.
type PauseMusic struct{}

// Celebrate asks the particle service to fire a burst.
type Celebrate struct {
	Burst Burst
}

// Evaded reports that the "No" control has a new target offset.
type Evaded struct {
	Offset Offset
}

func (PlayMusic) effect()  {}
func (PauseMusic) effect() {}
func (Celebrate) effect()  {}
func (Evaded) effect()     {}
