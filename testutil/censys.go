package testutil

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	FakeHostIP     = "1.1.1.1"
	FakeNextCursor = "eyJBZnRlciI6WyIxNC4yMTg5NzUiLCIzNy4xODcuOTguMTY1Il0sIlJldmVyc2UiOmZhbHNlfQ=="
	FakePrevCursor = "eyJCZWZvcmUiOlsiMTQuMjE4OTc1Il0sIlJldmVyc2UiOnRydWV9"

	defaultNumBuckets = 50
)

var fakeContinents = []string{"North America", "Europe", "Asia", "Oceania", "South America", "Africa"}

// CensysHandler imitates the hosts API: GET /{ip}, /search and /aggregate.
// Search returns an empty prev cursor unless a cursor was sent; aggregate
// honours num_buckets. Requests without the given credentials get a 302.
func CensysHandler(username, password string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, pass, ok := r.BasicAuth(); !ok || user != username || pass != password {
			w.Header().Set("Location", "/login")
			ErrorHandler(http.StatusFound, "Unauthorized. You must authenticate with a valid API ID and secret.")(w, r)

			return
		}

		path := strings.TrimPrefix(r.URL.Path, "/api/v2/hosts")

		switch path {
		case "/search":
			handleSearch(w, r)
		case "/aggregate":
			handleAggregate(w, r)
		case "/" + FakeHostIP:
			WriteJSON(w, http.StatusOK, map[string]any{
				"code":   http.StatusOK,
				"status": "OK",
				"result": map[string]any{
					"ip":       FakeHostIP,
					"services": []any{map[string]any{"port": 53, "service_name": "DNS"}},
					"at_time":  r.URL.Query().Get("at_time"),
				},
			})
		default:
			ErrorHandler(http.StatusNotFound, "We were unable to find the requested resource.")(w, r)
		}
	})
}

func handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("q") == "" {
		ErrorHandler(http.StatusBadRequest, "Query is required.")(w, r)

		return
	}

	prev := ""
	if query.Get("cursor") != "" {
		prev = FakePrevCursor
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"code":   http.StatusOK,
		"status": "OK",
		"result": map[string]any{
			"query": query.Get("q"),
			"total": 2,
			"hits":  []any{map[string]any{"ip": FakeHostIP}},
			"links": map[string]any{
				"next": FakeNextCursor,
				"prev": prev,
			},
		},
	})
}

func handleAggregate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	numBuckets := defaultNumBuckets
	if raw := query.Get("num_buckets"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			ErrorHandler(http.StatusBadRequest, "num_buckets must be a positive integer.")(w, r)

			return
		}

		numBuckets = n
	}

	buckets := make([]any, 0, numBuckets)
	for i := 0; i < numBuckets && i < len(fakeContinents); i++ {
		buckets = append(buckets, map[string]any{
			"key":   fakeContinents[i],
			"count": len(fakeContinents) - i,
		})
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"code":   http.StatusOK,
		"status": "OK",
		"result": map[string]any{
			"query":   query.Get("q"),
			"field":   query.Get("field"),
			"buckets": buckets,
		},
	})
}
