package domain

// Wisher is a user's application to take part in an interview.
type Wisher struct {
	ID          int
	InterviewID int
	UserID      int
	ContactBy   string
	Approve     bool
}

// Equal compares wishers by identity only.
func (w Wisher) Equal(other Wisher) bool {
	return w.ID == other.ID
}

// ApprovedCount is the number of approved participations of one user.
type ApprovedCount struct {
	UserID int
	Count  int
}
