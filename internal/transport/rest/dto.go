package rest

import (
	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// createDateLayout is the wire format of interview creation timestamps.
const createDateLayout = "2006-01-02T15:04"

type interviewDTO struct {
	ID              int    `json:"id"`
	Mode            int    `json:"mode"`
	StatusID        int    `json:"statusId"`
	StatusInfo      string `json:"statusInfo"`
	SubmitterID     int    `json:"submitterId"`
	AgreedWisherID  int    `json:"agreedWisherId"`
	Title           string `json:"title"`
	Additional      string `json:"additional"`
	ContactBy       string `json:"contactBy"`
	ApproximateDate string `json:"approximateDate"`
	CreateDate      string `json:"createDate"`
	TopicID         int    `json:"topicId"`
	Author          string `json:"author"`
	CancelBy        string `json:"cancelBy"`
}

func toInterviewDTO(i domain.Interview) interviewDTO {
	dto := interviewDTO{
		ID:              i.ID,
		Mode:            i.Mode,
		StatusID:        i.Status.Code(),
		StatusInfo:      i.Status.Info(),
		SubmitterID:     i.SubmitterID,
		AgreedWisherID:  i.AgreedWisherID,
		Title:           i.Title,
		Additional:      i.Additional,
		ContactBy:       i.ContactBy,
		ApproximateDate: i.ApproximateDate,
		TopicID:         i.TopicID,
		Author:          i.Author,
		CancelBy:        i.CancelBy,
	}
	if !i.CreatedAt.IsZero() {
		dto.CreateDate = i.CreatedAt.Format(createDateLayout)
	}
	return dto
}

func toInterviewDTOs(items []domain.Interview) []interviewDTO {
	out := make([]interviewDTO, 0, len(items))
	for _, i := range items {
		out = append(out, toInterviewDTO(i))
	}
	return out
}

// toDomain ignores createDate and statusInfo; both are server-owned.
func (d interviewDTO) toDomain() domain.Interview {
	return domain.Interview{
		ID:              d.ID,
		Mode:            d.Mode,
		Status:          domain.StatusOf(d.StatusID),
		SubmitterID:     d.SubmitterID,
		AgreedWisherID:  d.AgreedWisherID,
		Title:           d.Title,
		Additional:      d.Additional,
		ContactBy:       d.ContactBy,
		ApproximateDate: d.ApproximateDate,
		TopicID:         d.TopicID,
		Author:          d.Author,
		CancelBy:        d.CancelBy,
	}
}

type wisherDTO struct {
	ID          int    `json:"id"`
	InterviewID int    `json:"interviewId"`
	UserID      int    `json:"userId"`
	ContactBy   string `json:"contactBy"`
	Approve     bool   `json:"approve"`
}

func toWisherDTO(w domain.Wisher) wisherDTO {
	return wisherDTO{
		ID:          w.ID,
		InterviewID: w.InterviewID,
		UserID:      w.UserID,
		ContactBy:   w.ContactBy,
		Approve:     w.Approve,
	}
}

func toWisherDTOs(items []domain.Wisher) []wisherDTO {
	out := make([]wisherDTO, 0, len(items))
	for _, w := range items {
		out = append(out, toWisherDTO(w))
	}
	return out
}

func (d wisherDTO) toDomain() domain.Wisher {
	return domain.Wisher{
		ID:          d.ID,
		InterviewID: d.InterviewID,
		UserID:      d.UserID,
		ContactBy:   d.ContactBy,
		Approve:     d.Approve,
	}
}

type approvedCountDTO struct {
	UserID             int `json:"userId"`
	ApprovedInterviews int `json:"approvedInterviews"`
}

func toApprovedCountDTO(c domain.ApprovedCount) approvedCountDTO {
	return approvedCountDTO{UserID: c.UserID, ApprovedInterviews: c.Count}
}

type filterDTO struct {
	UserID        int `json:"userId"`
	CategoryID    int `json:"categoryId"`
	TopicID       int `json:"topicId"`
	FilterProfile int `json:"filterProfile"`
	Status        int `json:"status"`
	Mode          int `json:"mode"`
}

func toFilterDTO(f domain.Filter) filterDTO {
	return filterDTO{
		UserID:        f.UserID,
		CategoryID:    f.CategoryID,
		TopicID:       f.TopicID,
		FilterProfile: int(f.Profile),
		Status:        f.Status,
		Mode:          f.Mode,
	}
}

func (d filterDTO) toDomain() domain.Filter {
	return domain.Filter{
		UserID:     d.UserID,
		CategoryID: d.CategoryID,
		TopicID:    d.TopicID,
		Profile:    domain.FilterProfile(d.FilterProfile),
		Status:     d.Status,
		Mode:       d.Mode,
	}
}

// filterParamsDTO is the payload of the filter-request-params header. Absent
// and null fields decode to zero, which the search treats as unset.
type filterParamsDTO struct {
	TopicIDs       []int `json:"topicIds"`
	SubmitterID    int   `json:"submitterId"`
	WisherID       int   `json:"wisherId"`
	AgreedWisherID int   `json:"agreedWisherId"`
	Status         int   `json:"status"`
	Mode           int   `json:"mode"`
	Exclude        bool  `json:"exclude"`
}

func (d filterParamsDTO) toDomain() domain.FilterRequestParams {
	return domain.FilterRequestParams{
		TopicIDs:       d.TopicIDs,
		SubmitterID:    d.SubmitterID,
		WisherID:       d.WisherID,
		AgreedWisherID: d.AgreedWisherID,
		Status:         d.Status,
		Mode:           d.Mode,
		Exclude:        d.Exclude,
	}
}

type filterProfileDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type pageDTO[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

func toPageDTO[S, T any](p domain.Page[S], conv func(S) T) pageDTO[T] {
	content := make([]T, 0, len(p.Items))
	for _, item := range p.Items {
		content = append(content, conv(item))
	}

	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (p.TotalCount + p.PageSize - 1) / p.PageSize
	}

	return pageDTO[T]{
		Content:       content,
		TotalElements: p.TotalCount,
		TotalPages:    totalPages,
		Number:        p.PageNumber,
		Size:          p.PageSize,
	}
}
