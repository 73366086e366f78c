package domain

// Represents the optimizer's output: an explicit start location and an
// ordered event sequence satisfying precedence and capacity invariants.
// A Plan is immutable planning data; per-step cargo state is derived by
// the result assembler, not stored here.
type Plan struct {
	Start         string
	Events        []Event
	TotalDistance float64

	// Strategy records which search path produced the plan
	// ("exhaustive" or "greedy").
	Strategy string

	// Optimal is false only for the documented best-effort fallback,
	// when the search budget expired before the search space was done.
	Optimal bool
}
