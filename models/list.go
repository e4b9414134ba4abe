package models

// ListMeta describes one page of a paginated listing.
type ListMeta struct {
	Current  int   `json:"current"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
	Pages    int64 `json:"pages"`
}

// List is the envelope returned by every findAll-style endpoint.
type List[T any] struct {
	Meta   ListMeta `json:"meta"`
	Result []T      `json:"result"`
}

// NewList computes pagination metadata for a page of results.
func NewList[T any](result []T, current, pageSize int, total int64) List[T] {
	pages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		pages++
	}
	return List[T]{
		Meta:   ListMeta{Current: current, PageSize: pageSize, Total: total, Pages: pages},
		Result: result,
	}
}
