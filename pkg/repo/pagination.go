package repo

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ClampPage never rejects a page number; anything below 1 means the first
// page.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampPerPage applies def for non-positive values and caps the requested
// page size at max. Non-positive bounds fall back to the package defaults.
func ClampPerPage(perPage, def, max int) int {
	if def < 1 {
		def = DefaultPerPage
	}
	if max < 1 {
		max = MaxPerPage
	}
	if perPage < 1 {
		return def
	}
	if perPage > max {
		return max
	}
	return perPage
}
