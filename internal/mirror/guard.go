package mirror

// guardState models the two states a panel's update cycle can be in.
// Everything runs on the UI thread, so the state is a plain field.
type guardState int

const (
	stateIdle guardState = iota
	stateApplyingBatch
)

// Guard suppresses widget-changed callbacks while a programmatic batch
// update is in flight. One Guard covers a whole panel: a sync or load sets
// every row under a single ApplyingBatch window so that none of the N
// widget updates echoes a write back into the host.
type Guard struct {
	state guardState
}

// NewGuard returns a Guard in the Idle state.
func NewGuard() *Guard {
	return &Guard{state: stateIdle}
}

// Active reports whether a batch update is in flight. Widget-changed
// handlers treat an active guard as "this event is a programmatic echo"
// and return without touching the host.
func (g *Guard) Active() bool {
	return g.state == stateApplyingBatch
}

// Run executes fn with the guard in ApplyingBatch, restoring Idle when fn
// returns. The deferred release also covers panics, so a failing batch can
// never leave the guard stuck and the panel deaf to user input.
func (g *Guard) Run(fn func()) {
	if g.state == stateApplyingBatch {
		// Nested batch (a load refreshing rows mid-sync): the outer
		// Run owns the release.
		fn()
		return
	}
	g.state = stateApplyingBatch
	defer func() { g.state = stateIdle }()
	fn()
}
