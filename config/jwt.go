package config

import (
	"os"
	"strconv"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-this-in-production"
	}
	JWTSecret = []byte(secret)

	JWTExpiration = 24 * time.Hour
	if hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS")); err == nil && hours > 0 {
		JWTExpiration = time.Duration(hours) * time.Hour
	}
}
