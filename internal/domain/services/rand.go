package services

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness for reply sampling and forensic metadata
// synthesis. Production wiring passes nil and gets a time-seeded source;
// tests inject a fixed seed so selections reproduce.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func defaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
