package repositories

import "net/http"

// HTTPClient abstracts the outbound transport so tests can substitute it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
