package util

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string, used to stamp generation requests so
// responses and log lines can be correlated. A fresh time-seeded entropy
// source per call is sufficient at this call rate; switch to a shared
// ulid.Monotonic source if IDs are ever minted at high frequency.
func NewULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
