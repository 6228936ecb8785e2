package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "warehouse-keeper"

// HTTPClient is a JSON-speaking resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
//
// Requests are never retried: a notification that reached the server must
// not be sent twice.
//
// Example usage:
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().SetBody(payload).Post("https://hooks.example.com/alerts")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client whose requests are bounded by
// timeout. A zero timeout leaves requests unbounded apart from their
// context.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
