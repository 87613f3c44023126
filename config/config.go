package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
		// BaseURL is the externally visible origin used when building
		// absolute post links (share mail, feed, sitemap).
		BaseURL string
	}
	Email struct {
		Host     string
		Port     int
		Username string
		Password string
	}
}
