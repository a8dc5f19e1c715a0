package application

import "github.com/trenchhq/trench-api/internal/domain/repository"

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// NormalizePage clamps raw page/limit query values and returns them together
// with the offset window for the repositories.
func NormalizePage(page, limit int) (int, int, repository.Page) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit, repository.Page{Limit: limit, Offset: (page - 1) * limit}
}
