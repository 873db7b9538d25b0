package pagination

import "math"

// Page is one slice of a larger result set. Page numbers start at 0.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// NewPage builds the page metadata around content.
func NewPage[T any](content []T, number, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if size > 0 && total > 0 {
		pages := total / int64(size)
		if total%int64(size) != 0 {
			pages++
		}
		totalPages = int(pages)
	}

	return Page[T]{
		Content:          content,
		Number:           number,
		Size:             size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            number == 0,
		Last:             number >= totalPages-1,
		Empty:            len(content) == 0,
	}
}

// Map converts the content of a page while keeping its metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		out = append(out, fn(item))
	}
	return Page[U]{
		Content:          out,
		Number:           p.Number,
		Size:             p.Size,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		NumberOfElements: len(out),
		First:            p.First,
		Last:             p.Last,
		Empty:            len(out) == 0,
	}
}

// Offset returns the row offset of a 0-based page. It saturates at
// math.MaxInt instead of wrapping, so a page past the end stays empty.
func Offset(page, size int) int {
	if page <= 0 || size <= 0 {
		return 0
	}
	if page > math.MaxInt/size {
		return math.MaxInt
	}
	return page * size
}

// InRange reports whether the first row of page fits in an int offset.
func InRange(page, size int) bool {
	return size <= 0 || page <= math.MaxInt/size
}
