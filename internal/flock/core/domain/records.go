package domain

import "time"

// EggRecord is one egg collection from a coop.
type EggRecord struct {
	ID         string
	CoopNumber int
	Count      int
	RecordedAt time.Time
	UpdatedAt  *time.Time
}

// DeathRecord logs birds lost in a coop and why.
type DeathRecord struct {
	ID           string
	CoopNumber   int
	Count        int
	CauseOfDeath string
	RecordedAt   time.Time
	UpdatedAt    *time.Time
}
