// Package activity defines the extracurricular activity domain model.
package activity

import "strings"

// Activity describes one extracurricular offering and its participant roster.
type Activity struct {
	// Name is the unique registry key for the activity.
	Name        string
	Description string
	// Schedule is the human-readable meeting time.
	Schedule string
	// MaxParticipants is the declared capacity. It is informational only;
	// the registry records it but does not enforce it.
	MaxParticipants int
	// Participants holds enrolled student emails in signup order.
	// Invariant: no email appears twice.
	Participants []string
}

// Clone returns a deep copy so callers cannot alias the roster slice.
func (a Activity) Clone() Activity {
	cloned := a
	if a.Participants != nil {
		cloned.Participants = make([]string, len(a.Participants))
		copy(cloned.Participants, a.Participants)
	}
	return cloned
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}

// NormalizeEmail trims a student email and rejects blanks.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyEmail
	}
	return email, nil
}
