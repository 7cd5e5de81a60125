package utils

// PhysDecVersion is set from source control at build time.
var PhysDecVersion string = "unknown"

// If is the ternary operator (eager evaluation)
func If[T any](cond bool, t, f T) T {
	if cond {
		return t
	}
	return f
}
