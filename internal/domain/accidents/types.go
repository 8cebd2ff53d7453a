package accidents

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses follow the book's review flow; a report only ever
// moves forward: open -> reviewed -> closed.
const (
	StatusOpen     = "open"
	StatusReviewed = "reviewed"
	StatusClosed   = "closed"
)

// Report is one entry in the digital accident book.
type Report struct {
	ID               uuid.UUID `json:"id"`
	ReporterName     string    `json:"reporter_name"`
	ReporterEmail    string    `json:"reporter_email"`
	InjuredParty     string    `json:"injured_party"`
	Location         string    `json:"location"`
	OccurredAt       time.Time `json:"occurred_at"`
	InjuryType       string    `json:"injury_type"`
	Description      string    `json:"description"`
	TreatmentGiven   string    `json:"treatment_given,omitempty"`
	RiddorReportable bool      `json:"riddor_reportable"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ValidTransition reports whether a status change is allowed. Every
// report must pass through review before it can be closed.
func ValidTransition(from, to string) bool {
	switch from {
	case StatusOpen:
		return to == StatusReviewed
	case StatusReviewed:
		return to == StatusClosed
	default:
		return false
	}
}
