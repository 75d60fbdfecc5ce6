package httputil

import (
	"net/http"
	"time"

	"github.com/matzehuels/wingetreport/pkg/buildinfo"
)

// DefaultTimeout is the overall client timeout for requests without a tighter context deadline.
const DefaultTimeout = 10 * time.Second

// UserAgent is sent with every request.
var UserAgent = buildinfo.UserAgent()

// NewHTTPClient creates an HTTP client with a standard timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}
