package engine

// System is one per-tick game logic step
// The World runs all registered systems once per tick in ascending Priority
type System interface {
	// Name returns a short identifier used in logs and metrics
	Name() string

	// Priority orders execution, lower values run first
	Priority() int

	// Update performs the system's work for the current tick
	Update()
}
