package models

// SearchOptions are the parameters of a free-text catalog search.
// OrderBy and Sort are forwarded only when set.
type SearchOptions struct {
	Query   string
	Page    int
	OrderBy string
	Sort    string
}

// Result holds either a value or an error from a concurrent fetch.
type Result[T any] struct {
	Value T
	Err   error
}
