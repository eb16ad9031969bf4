package output

import "github.com/rpgo/investment-simulator/internal/domain"

// DefaultPerPage is the ledger page size used by the console table.
const DefaultPerPage = 12

// Page describes one slice of the monthly ledger.
type Page struct {
	Page       int `json:"page" yaml:"page"`
	PerPage    int `json:"perPage" yaml:"per_page"`
	TotalItems int `json:"totalItems" yaml:"total_items"`
	TotalPages int `json:"totalPages" yaml:"total_pages"`
}

// HasNext reports whether a page follows this one.
func (p Page) HasNext() bool { return p.Page < p.TotalPages }

// HasPrevious reports whether a page precedes this one.
func (p Page) HasPrevious() bool { return p.Page > 1 }

// Paginate returns the entries of 1-based page. perPage < 1 means
// DefaultPerPage and page < 1 means the first page. A page past the end
// yields an empty, non-nil slice.
func Paginate(entries []domain.MonthlyLedgerEntry, page, perPage int) ([]domain.MonthlyLedgerEntry, Page) {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}
	total := len(entries)
	info := Page{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}

	start := (page - 1) * perPage
	if start >= total {
		return []domain.MonthlyLedgerEntry{}, info
	}
	end := min(start+perPage, total)
	return entries[start:end], info
}
