package domain

import "time"

// DefaultTopicID is the topic reported for interviews stored without one.
const DefaultTopicID = 1

// Interview is a mock-interview session published by its submitter.
type Interview struct {
	ID              int
	Mode            int
	Status          InterviewStatus
	SubmitterID     int
	AgreedWisherID  int // 0 when no participant has been chosen
	Title           string
	Additional      string
	ContactBy       string
	ApproximateDate string
	CreatedAt       time.Time
	TopicID         int
	Author          string
	CancelBy        string
}

// HasAgreedWisher reports whether a participant has been chosen.
func (i *Interview) HasAgreedWisher() bool {
	return i.AgreedWisherID > 0
}

// NormalizeTopicID maps a NULL topic column to DefaultTopicID.
func NormalizeTopicID(topicID *int) int {
	if topicID == nil {
		return DefaultTopicID
	}
	return *topicID
}

// TruncateToMinute drops seconds and below. Creation timestamps are stored at
// minute precision.
func TruncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
