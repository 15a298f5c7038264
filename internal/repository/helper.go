package repository

const (
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100
)

// PageVerify clamps page and pageSize to usable values so every listing
// shares one normalization.
func PageVerify(page, pageSize *int) {
	if *page < 1 {
		*page = 1
	}
	if *pageSize < MinPageSize || *pageSize > MaxPageSize {
		*pageSize = DefaultPageSize
	}
}
