package dto

// PaginatedResponse is one page of a list plus the size of the whole filtered list.
type PaginatedResponse[T any] struct {
	List       []T    `json:"list"`
	TotalCount uint64 `json:"total_count"`
}
