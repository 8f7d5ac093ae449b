package usecase

import "fmt"

const (
	DefaultMatchLimit  = 50
	DefaultPlayerLimit = 20
	MaxPageLimit       = 500
)

type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Skip    int  `json:"skip"`
	HasMore bool `json:"hasMore"`
}

func newPagination(total, limit, skip int) Pagination {
	return Pagination{
		Total:   total,
		Limit:   limit,
		Skip:    skip,
		HasMore: skip+limit < total,
	}
}

// resolvePage applies defaults to unset values and bounds-checks the rest.
func resolvePage(limit, skip *int, defaultLimit int) (int, int, error) {
	outLimit, outSkip := defaultLimit, 0
	if limit != nil {
		outLimit = *limit
	}
	if skip != nil {
		outSkip = *skip
	}
	if outLimit < 1 || outLimit > MaxPageLimit {
		return 0, 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxPageLimit)
	}
	if outSkip < 0 {
		return 0, 0, fmt.Errorf("%w: skip must be zero or greater", ErrInvalidInput)
	}
	return outLimit, outSkip, nil
}
