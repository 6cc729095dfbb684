package planner

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator returns an opaque request identifier. It must be safe for concurrent use.
type IDGenerator func() string

// UUIDv7 returns a time-ordered UUID string.
func UUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// MillisClock returns a generator producing the Unix time in milliseconds read from now.
func MillisClock(now func() time.Time) IDGenerator {
	return func() string {
		return strconv.FormatInt(now().UnixMilli(), 10)
	}
}

// StaticID always returns id.
func StaticID(id string) IDGenerator {
	return func() string { return id }
}
