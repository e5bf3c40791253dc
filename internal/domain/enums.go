package domain

// InterviewStatus is the lifecycle state of an interview. The numeric value is
// the code persisted in interviews.status.
type InterviewStatus int

const (
	StatusUnknown    InterviewStatus = 0
	StatusNew        InterviewStatus = 1
	StatusInProgress InterviewStatus = 2
	StatusFeedback   InterviewStatus = 3
	StatusCompleted  InterviewStatus = 4
	StatusCanceled   InterviewStatus = 5
)

var statusNames = map[InterviewStatus]string{
	StatusUnknown:    "IS_UNKNOWN",
	StatusNew:        "IS_NEW",
	StatusInProgress: "IN_PROGRESS",
	StatusFeedback:   "IS_FEEDBACK",
	StatusCompleted:  "IS_COMPLETED",
	StatusCanceled:   "IS_CANCELED",
}

var statusInfo = map[InterviewStatus]string{
	StatusUnknown:    "Unknown status",
	StatusNew:        "New interview",
	StatusInProgress: "Interview in progress",
	StatusFeedback:   "Waiting for feedback",
	StatusCompleted:  "Interview completed",
	StatusCanceled:   "Interview canceled",
}

// AllStatuses returns every known status in code order.
func AllStatuses() []InterviewStatus {
	return []InterviewStatus{
		StatusUnknown, StatusNew, StatusInProgress,
		StatusFeedback, StatusCompleted, StatusCanceled,
	}
}

func (s InterviewStatus) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s InterviewStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[StatusUnknown]
}

// Info is the human readable description shown to clients.
func (s InterviewStatus) Info() string {
	if info, ok := statusInfo[s]; ok {
		return info
	}
	return statusInfo[StatusUnknown]
}

// Code returns the persisted code. Values outside the known set map to the
// unknown code.
func (s InterviewStatus) Code() int {
	if !s.IsValid() {
		return int(StatusUnknown)
	}
	return int(s)
}

// CodeOf converts a possibly absent status to its persisted code.
func CodeOf(s *InterviewStatus) int {
	if s == nil {
		return int(StatusUnknown)
	}
	return s.Code()
}

// StatusOf resolves a persisted code by exact match. Unmatched codes resolve
// to StatusUnknown.
func StatusOf(code int) InterviewStatus {
	s := InterviewStatus(code)
	if !s.IsValid() {
		return StatusUnknown
	}
	return s
}

// StatusOfNullable is StatusOf for a nullable column.
func StatusOfNullable(code *int) InterviewStatus {
	if code == nil {
		return StatusUnknown
	}
	return StatusOf(*code)
}

// FilterProfile is the preset a user picks for their saved interview filter.
type FilterProfile int

const (
	FilterProfileNone           FilterProfile = 0
	FilterProfileAuthor         FilterProfile = 1
	FilterProfileParticipant    FilterProfile = 2
	FilterProfileNotAuthor      FilterProfile = 3
	FilterProfileNotParticipant FilterProfile = 4
	FilterProfileWisher         FilterProfile = 5
)

var filterProfileInfo = map[FilterProfile]string{
	FilterProfileAuthor:         "I am the author",
	FilterProfileParticipant:    "I am the participant",
	FilterProfileNotAuthor:      "I am not the author",
	FilterProfileNotParticipant: "I am not the participant",
	FilterProfileWisher:         "I applied to participate",
}

// FilterProfiles returns the selectable presets in id order.
func FilterProfiles() []FilterProfile {
	return []FilterProfile{
		FilterProfileAuthor, FilterProfileParticipant, FilterProfileNotAuthor,
		FilterProfileNotParticipant, FilterProfileWisher,
	}
}

func (p FilterProfile) IsValid() bool {
	_, ok := filterProfileInfo[p]
	return ok
}

func (p FilterProfile) Info() string {
	return filterProfileInfo[p]
}
