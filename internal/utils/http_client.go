package utils

import (
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent identifies outbound requests made by the recipe keeper.
const DefaultUserAgent = "go-recipe-keeper"

// HTTPClient embeds *resty.Client so callers configure it with the usual
// resty setters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends DefaultUserAgent
// and does not retry.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", DefaultUserAgent).
		SetRetryCount(0)
	return &HTTPClient{Client: client}
}
