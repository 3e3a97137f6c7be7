package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Request defaults, shared by every paged resource.
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 50
	DefaultSortOrder  = "asc"
	MaxPageSize       = 100
)

type Params struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortOrder  string
}

// FromQuery parses pageNumber/pageSize/sortBy/sortOrder query parameters,
// falling back to the defaults when absent or malformed.
func FromQuery(c *gin.Context, defaultSortBy string) Params {
	p := Params{
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
		SortBy:     c.DefaultQuery("sortBy", defaultSortBy),
		SortOrder:  c.DefaultQuery("sortOrder", DefaultSortOrder),
	}

	if n, err := strconv.Atoi(c.Query("pageNumber")); err == nil && n >= 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(c.Query("pageSize")); err == nil && n > 0 {
		p.PageSize = n
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}

	return p
}

func (p Params) Limit() int {
	if p.PageSize <= 0 {
		return DefaultPageSize
	}
	return p.PageSize
}

func (p Params) Offset() int {
	return p.PageNumber * p.Limit()
}

// OrderClause maps the requested sort field through a column whitelist so the
// value never reaches the query text unescaped. Unknown fields fall back to
// the default column.
func (p Params) OrderClause(columns map[string]string, defaultColumn string) string {
	column, ok := columns[p.SortBy]
	if !ok {
		column = defaultColumn
	}

	dir := "DESC"
	if strings.EqualFold(p.SortOrder, "asc") {
		dir = "ASC"
	}

	return column + " " + dir
}

// Page is the paged response envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	LastPage      bool  `json:"lastPage"`
}

func NewPage[T any](content []T, p Params, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	size := p.Limit()
	totalPages := int((total + int64(size) - 1) / int64(size))

	return Page[T]{
		Content:       content,
		PageNumber:    p.PageNumber,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		LastPage:      p.PageNumber >= totalPages-1,
	}
}
