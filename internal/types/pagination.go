package types

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Pagination mirrors the skip/limit query parameters accepted by every list endpoint.
type Pagination struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// Normalize clamps the values into the accepted range.
func (p Pagination) Normalize() Pagination {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
