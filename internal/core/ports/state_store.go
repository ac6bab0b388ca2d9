package ports

// SleepStateStore persists whether the assistant is sleeping.
//
//go:generate mockgen -source=state_store.go -destination=mocks/mock_state_store.go -package=mocks
type SleepStateStore interface {
	// Sleeping returns the stored state. Read failures report awake.
	Sleeping() bool

	// SetSleeping writes the state and verifies it by reading it back.
	SetSleeping(sleeping bool) error
}
