package domain

import "strconv"

// DefaultPageSize is the number of posts on one listing page.
const DefaultPageSize = 10

// PageWindow is the resolved position of one page inside an ordered collection.
type PageWindow struct {
	Number   int
	Size     int
	Total    int
	NumPages int
}

// ParsePageNumber interprets the raw ?page= value. Missing, non-numeric
// and non-positive values map to 1. The upper bound is applied by NewPageWindow.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// NewPageWindow resolves raw against a collection of total items. Requests
// beyond the last page get the last page; an empty collection has one empty page.
func NewPageWindow(raw string, total, size int) PageWindow {
	if size < 1 {
		size = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}

	numPages := 1
	if total > 0 {
		numPages = (total + size - 1) / size
	}

	number := ParsePageNumber(raw)
	if number > numPages {
		number = numPages
	}

	return PageWindow{Number: number, Size: size, Total: total, NumPages: numPages}
}

// Offset is the number of items preceding this page.
func (w PageWindow) Offset() int { return (w.Number - 1) * w.Size }

// Limit is the maximum number of items on this page.
func (w PageWindow) Limit() int { return w.Size }

// HasNext reports whether a page follows this one.
func (w PageWindow) HasNext() bool { return w.Number < w.NumPages }

// HasPrevious reports whether this is not the first page.
func (w PageWindow) HasPrevious() bool { return w.Number > 1 }

// Page is one window of an ordered collection together with its position.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	Size        int  `json:"size"`
	Total       int  `json:"total"`
	NumPages    int  `json:"num_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPage assembles a Page from a resolved window and the items the store returned for it.
func NewPage[T any](w PageWindow, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Number:      w.Number,
		Size:        w.Size,
		Total:       w.Total,
		NumPages:    w.NumPages,
		HasNext:     w.HasNext(),
		HasPrevious: w.HasPrevious(),
	}
}

// Paginate slices an in-memory ordered collection with the same window rules as NewPageWindow.
func Paginate[T any](items []T, raw string, size int) Page[T] {
	w := NewPageWindow(raw, len(items), size)
	start := w.Offset()
	end := min(start+w.Size, len(items))
	if start > end {
		start = end
	}
	return NewPage(w, append([]T(nil), items[start:end]...))
}

// EmptyPage is page 1 of an empty collection.
func EmptyPage[T any](size int) Page[T] {
	return NewPage[T](NewPageWindow("", 0, size), nil)
}
