package types

import "math"

// Pagination defaults and limits for list endpoints.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// PaginationRequest represents pagination parameters in requests
type PaginationRequest struct {
	Page    int `form:"page" json:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" json:"per_page" binding:"omitempty,min=1,max=100"`
}

// Normalize fills in defaults for omitted values.
func (p *PaginationRequest) Normalize() {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PerPage == 0 {
		p.PerPage = DefaultPerPage
	}
}

// TotalPages returns how many pages of PerPage items hold total items.
func (p PaginationRequest) TotalPages(total int64) int {
	if p.PerPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// InRange reports whether the window's row offset fits in an int.
// Normalize must have been called first.
func (p PaginationRequest) InRange() bool {
	return p.Page > 0 && p.PerPage > 0 && p.Page-1 <= math.MaxInt/p.PerPage
}
