package ports

import "net/http"

// HTTPClient is the subset of *http.Client the dispatcher needs.
// Tests substitute a client that records or fails requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
