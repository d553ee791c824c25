package sqlitedb

import (
	"time"

	"github.com/google/uuid"
)

// Run is one conversion run.
type Run struct {
	ID        uuid.UUID
	CreatedAt time.Time
	AbstSlots string
	Examples  int
	// SHA-256 of the input files
	DAHash   string
	TextHash string
}

// Example is one aligned corpus example of a run, serialized the same way
// as in the text outputs.
type Example struct {
	RunID     uuid.UUID
	Part      string
	Index     int
	DA        string
	DelexDA   string
	Text      string
	DelexText string
	Absts     string
}
