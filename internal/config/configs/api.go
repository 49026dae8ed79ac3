package configs

import "net/url"

// API holds configuration for the remote campaign service.
type API struct {
	// URL is the base URL of the campaign API. Endpoint paths such as
	// /campaigns/ are appended to it.
	URL url.URL `env:"URL" envDefault:"http://localhost:8000/api"`
}

// BaseURL returns the configured base URL as a string.
func (c API) BaseURL() string {
	return c.URL.String()
}
