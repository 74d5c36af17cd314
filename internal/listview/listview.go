// Package listview holds the state behind every list page: the rows loaded
// from storage, the subset matching the current search, and the page being
// shown. Any mutation of the underlying data is handled by calling Load again
// with a fresh row set; rows are never patched in place.
package listview

import "strings"

// DefaultPageSize is used when a view is created with a non-positive size.
const DefaultPageSize = 10

// Searchable rows expose the text of their visible columns.
type Searchable interface {
	SearchText() []string
}

// Statused rows can additionally be filtered by exact status value.
type Statused interface {
	StatusValue() string
}

type View[T Searchable] struct {
	all      []T
	filtered []T
	pageSize int
	page     int
	term     string
	status   string
}

func New[T Searchable](pageSize int) *View[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View[T]{pageSize: pageSize, page: 1}
}

// Load replaces the full row set, re-applies the active filter and goes back
// to the first page.
func (v *View[T]) Load(rows []T) {
	v.all = rows
	v.apply()
}

// Filter sets the search term and status, then goes back to the first page.
// The term matches case-insensitively as a substring of any visible column;
// surrounding whitespace is ignored. An empty status disables the status
// filter.
func (v *View[T]) Filter(term, status string) {
	v.term = strings.ToLower(strings.TrimSpace(term))
	v.status = strings.TrimSpace(status)
	v.apply()
}

func (v *View[T]) apply() {
	v.page = 1
	if v.term == "" && v.status == "" {
		v.filtered = v.all
		return
	}

	v.filtered = make([]T, 0, len(v.all))
	for _, row := range v.all {
		if v.matches(row) {
			v.filtered = append(v.filtered, row)
		}
	}
}

func (v *View[T]) matches(row T) bool {
	if v.status != "" {
		if s, ok := any(row).(Statused); ok && s.StatusValue() != v.status {
			return false
		}
	}
	if v.term == "" {
		return true
	}
	for _, text := range row.SearchText() {
		if strings.Contains(strings.ToLower(text), v.term) {
			return true
		}
	}
	return false
}

func (v *View[T]) PageSize() int { return v.pageSize }

func (v *View[T]) Page() int { return v.page }

// TotalItems is the number of rows matching the filter.
func (v *View[T]) TotalItems() int { return len(v.filtered) }

// TotalPages is ceil(filtered / pageSize), zero when nothing matches.
func (v *View[T]) TotalPages() int {
	return (len(v.filtered) + v.pageSize - 1) / v.pageSize
}

// Next advances one page. It reports false and does nothing on the last page.
func (v *View[T]) Next() bool {
	if v.page >= v.TotalPages() {
		return false
	}
	v.page++
	return true
}

// Prev goes back one page. It reports false and does nothing on the first page.
func (v *View[T]) Prev() bool {
	if v.page <= 1 {
		return false
	}
	v.page--
	return true
}

// Goto jumps to page n clamped to [1, TotalPages].
func (v *View[T]) Goto(n int) {
	total := v.TotalPages()
	switch {
	case n < 1 || total == 0:
		v.page = 1
	case n > total:
		v.page = total
	default:
		v.page = n
	}
}

// Items returns the rows of the current page.
func (v *View[T]) Items() []T {
	start := (v.page - 1) * v.pageSize
	if start >= len(v.filtered) {
		return []T{}
	}
	end := start + v.pageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}

// Page is the rendered state of a view.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	// FirstIndex is the 1-based position of the first item within the
	// filtered rows, used for the row number column.
	FirstIndex int  `json:"first_index"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

func (v *View[T]) Render() Page[T] {
	return Page[T]{
		Items:      v.Items(),
		Page:       v.page,
		PageSize:   v.pageSize,
		TotalItems: len(v.filtered),
		TotalPages: v.TotalPages(),
		FirstIndex: (v.page-1)*v.pageSize + 1,
		HasPrev:    v.page > 1,
		HasNext:    v.page < v.TotalPages(),
	}
}
