package clock

import (
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time.Now so services that compare timestamps
// (checkpoint windows) can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator issues primary keys. Production uses UUID v7 so ids
// sort by creation time.
type IDGenerator interface {
	NewID() uuid.UUID
}

type UUIDv7Generator struct{}

func (UUIDv7Generator) NewID() uuid.UUID { return uuid.Must(uuid.NewV7()) }
