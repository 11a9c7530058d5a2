package queryparams

// List query defaults. PerPage is capped so a caller cannot ask for the
// whole table in one page.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams carries the common list-endpoint query parameters: free-text
// search, sorting and pagination. Entity-specific filters travel separately.
type ListParams struct {
	Query   string `query:"q" form:"q"`
	SortBy  string `query:"sort_by" form:"sort_by"`
	OrderBy string `query:"order_by" form:"order_by"`
	Page    int    `query:"page" form:"page"`
	PerPage int    `query:"per_page" form:"per_page"`
}

// DefaultListParams returns params sorted by the given column, descending.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}
}

// Validate clamps page and per-page into range and normalizes the order
// direction. Invalid values fall back to defaults rather than failing.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// CalculateOffset returns the SQL offset for the current page.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta describes one page of a paginated result.
type PaginationMeta struct {
	CurrentPage int   `json:"page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// PaginatedResult is the common list-response envelope.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// CalculateTotalPages returns the page count for a total and page size.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 0
	}
	pages := int(totalItems) / perPage
	if int(totalItems)%perPage != 0 {
		pages++
	}
	return pages
}

// NewPaginatedResult bundles data with its pagination meta.
func NewPaginatedResult(data interface{}, params ListParams, totalItems int64) *PaginatedResult {
	return &PaginatedResult{
		Data: data,
		Meta: PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalItems,
			TotalPages:  CalculateTotalPages(totalItems, params.PerPage),
		},
	}
}
