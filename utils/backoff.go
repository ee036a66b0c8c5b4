package utils

import (
	"math/rand"
	"time"
)

// BackOff returns how long to wait before the given retry attempt (0-based)
type BackOff func(attempt int) time.Duration

// ExponentialBackOff doubles the jittered wait with every attempt, starting at base
func ExponentialBackOff(base time.Duration) BackOff {
	return func(attempt int) time.Duration {
		return jittered(base, float64(uint64(1)<<min(attempt, 32)))
	}
}

// LinearBackOff grows the jittered wait by base with every attempt
func LinearBackOff(base time.Duration) BackOff {
	return func(attempt int) time.Duration {
		return jittered(base, float64(attempt))
	}
}

// Capped limits the wait returned by b to at most ceiling
func Capped(b BackOff, ceiling time.Duration) BackOff {
	return func(attempt int) time.Duration {
		return min(b(attempt), ceiling)
	}
}

// jittered returns base * (1 + factor*j) for a random j in [0, 1)
func jittered(base time.Duration, factor float64) time.Duration {
	return time.Duration((1 + factor*rand.Float64()) * float64(base))
}
