package models

// CircuitBreakerState is the state of a circuit breaker guarding an upstream dependency
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

var circuitStateNames = map[CircuitBreakerState]string{
	CircuitClosed:   "closed",
	CircuitOpen:     "open",
	CircuitHalfOpen: "half_open",
}

func (s CircuitBreakerState) String() string {
	if name, ok := circuitStateNames[s]; ok {
		return name
	}
	return "unknown"
}
