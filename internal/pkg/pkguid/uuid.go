package pkguid

import "github.com/google/uuid"

// UUID generates time-ordered UUIDv7 strings.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUIDv7 string. It panics only if the system
// random source fails.
func (u *UUID) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
