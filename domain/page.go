package domain

// Page is one offset-paged slice of a listing plus the listing's total size.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int64
}
