package domain

// Activity is a club or class students can join. The name is the unique key.
type Activity struct {
	Name        string
	Description string
	Schedule    string
	// MaxParticipants is advisory; signups beyond it are accepted.
	MaxParticipants int
	Participants    []string
}

// Clone returns a copy that does not share the participant slice.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// SpotsLeft is the advisory remaining capacity, never negative.
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}
