package repository

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

// Paginate slices items according to pq. Total is always len(items).
// A non-positive limit returns everything from the offset on.
func Paginate[T any](items []T, pq PageQuery) PageResult[T] {
	total := len(items)
	offset := pq.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if pq.Limit > 0 && offset+pq.Limit < total {
		end = offset + pq.Limit
	}
	page := make([]T, end-offset)
	copy(page, items[offset:end])
	return PageResult[T]{Items: page, Total: total}
}
