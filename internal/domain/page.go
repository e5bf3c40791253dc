package domain

// Page is one slice of an ordered listing.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
	TotalCount int
}

// PageRequest selects a zero-based page of a listing.
type PageRequest struct {
	Number int
	Size   int
}

// Normalize clamps the request: negative page numbers become 0, a missing
// size becomes defaultSize and oversize requests are capped at maxSize.
func (p PageRequest) Normalize(defaultSize, maxSize int) PageRequest {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	if maxSize > 0 && p.Size > maxSize {
		p.Size = maxSize
	}
	return p
}

// Offset is the number of rows preceding the page.
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// NewPage builds a Page, replacing a nil item slice with an empty one.
func NewPage[T any](items []T, req PageRequest, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		PageNumber: req.Number,
		PageSize:   req.Size,
		TotalCount: total,
	}
}
