package domain

import "slices"

// Filter is the interview search a user saved. One row per user.
type Filter struct {
	UserID     int
	CategoryID int
	TopicID    int
	Profile    FilterProfile
	Status     int
	Mode       int
}

// Equal compares the identifying fields. Mode is not part of equality.
func (f Filter) Equal(other Filter) bool {
	return f.UserID == other.UserID &&
		f.CategoryID == other.CategoryID &&
		f.TopicID == other.TopicID &&
		f.Status == other.Status
}

// RequestParams expands the saved filter into search parameters from the
// point of view of its owner.
func (f Filter) RequestParams() FilterRequestParams {
	p := FilterRequestParams{
		Status: f.Status,
		Mode:   f.Mode,
	}
	if f.TopicID > 0 {
		p.TopicIDs = []int{f.TopicID}
	}

	switch f.Profile {
	case FilterProfileAuthor:
		p.SubmitterID = f.UserID
	case FilterProfileNotAuthor:
		p.SubmitterID = f.UserID
		p.Exclude = true
	case FilterProfileParticipant:
		p.AgreedWisherID = f.UserID
	case FilterProfileNotParticipant:
		p.AgreedWisherID = f.UserID
		p.Exclude = true
	case FilterProfileWisher:
		p.WisherID = f.UserID
	}

	return p
}

// FilterRequestParams is a sparse interview search. Non-positive ids and an
// empty TopicIDs list mean the field is not set. Exclude inverts the
// submitter, agreed wisher and wisher conditions.
type FilterRequestParams struct {
	TopicIDs       []int
	SubmitterID    int
	WisherID       int
	AgreedWisherID int
	Status         int
	Mode           int
	Exclude        bool
}

// IsEmpty reports whether no field is set.
func (p FilterRequestParams) IsEmpty() bool {
	return len(p.TopicIDs) == 0 &&
		p.SubmitterID <= 0 &&
		p.WisherID <= 0 &&
		p.AgreedWisherID <= 0 &&
		p.Status <= 0 &&
		p.Mode <= 0
}

// Equal ignores Mode.
func (p FilterRequestParams) Equal(other FilterRequestParams) bool {
	return slices.Equal(p.TopicIDs, other.TopicIDs) &&
		p.SubmitterID == other.SubmitterID &&
		p.WisherID == other.WisherID &&
		p.AgreedWisherID == other.AgreedWisherID &&
		p.Status == other.Status &&
		p.Exclude == other.Exclude
}
