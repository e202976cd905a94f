package domain

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

func (s MatchStatus) String() string { return string(s) }

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusRejected:
		return true
	}
	return false
}

// IsFinal reports whether no further transition is allowed from s.
func (s MatchStatus) IsFinal() bool {
	return s == MatchStatusAccepted || s == MatchStatusRejected
}
