package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/service"
)

// getStrategy reads the strategy query parameter. Unknown or missing values
// select the default strategy.
func getStrategy(r *http.Request, fallback domain.Strategy) domain.Strategy {
	raw := r.URL.Query().Get("strategy")
	if raw == "" {
		return fallback
	}
	return domain.ParseStrategy(raw)
}

// getUseAI reports whether the use_ai query parameter is exactly "true".
func getUseAI(r *http.Request) bool {
	return r.URL.Query().Get("use_ai") == "true"
}

// getLimit parses the limit query parameter.
//
// Returns:
//   - (fallback, nil) when the parameter is absent
//   - (n, nil) for an integer in [1, max]
//   - (0, error) wrapping service.ErrInvalidLimit otherwise
func getLimit(r *http.Request, fallback, max int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > max {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidLimit, raw)
	}
	return n, nil
}
