package config

import (
	"os"
	"strings"
)

// The admin allow-list has exactly one address. Registration never grants
// admin rights; only membership here does.
var adminEmails []string

var siteURL string

func init() {
	admin := os.Getenv("ADMIN_EMAIL")
	if admin == "" {
		admin = "admin@example.com"
	}
	adminEmails = []string{admin}

	siteURL = strings.TrimSuffix(os.Getenv("SITE_URL"), "/")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}
}

func IsAdminEmail(email string) bool {
	for _, e := range adminEmails {
		if e == email {
			return true
		}
	}
	return false
}

func SiteURL() string {
	return siteURL
}
