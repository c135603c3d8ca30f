package modio

// Page is the paged envelope of the mod.io list responses.
type Page[T any] struct {
	Data         []T `json:"data"`
	ResultCount  int `json:"result_count"`
	ResultOffset int `json:"result_offset"`
	ResultLimit  int `json:"result_limit"`
	ResultTotal  int `json:"result_total"`
}

// IsLast returns true if the page is the last one.
func (p Page[T]) IsLast() bool {
	return p.ResultOffset+p.ResultCount >= p.ResultTotal
}
