package types

import (
	"net/http"
	"os"
	"strings"
)

const ContextUserKey = "user"

// Transaction and category type values, also enforced by check constraints.
const (
	TypeIncome  = 0
	TypeExpense = 1
)

const (
	MaxAccountsPerUser = 5
	DefaultPageSize    = 20
	RecentActivityN    = 5
	HistoryWindowDays  = 30
)

const DefaultCurrency = "GBP"

// StatusMessages maps the status codes the API uses to their envelope text.
var StatusMessages = map[int]string{
	http.StatusOK:                  "OK",
	http.StatusCreated:             "Created",
	http.StatusBadRequest:          "Bad request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not found",
	http.StatusInternalServerError: "Internal server error",
}

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
