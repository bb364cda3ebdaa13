package domain

// Session is what the wallet runtime reports about its single materialized
// identity. It is derived state and never persisted by the registry.
type Session struct {
	Initialized bool
	Unlocked    bool
	Name        string
}

type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseLoaded        Phase = "loaded"
	PhaseMigrating     Phase = "migrating"
	PhaseRecovering    Phase = "recovering"
	PhaseReady         Phase = "ready"
)
