package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"
)

// MetricsAuth guards the metrics endpoint with basic auth, checking the
// password against a bcrypt hash so no plain password sits in the config.
func MetricsAuth(user, passwordHash string) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm:      "metrics",
		Authorizer: metricsAuthorizer(user, []byte(passwordHash)),
	})
}

func metricsAuthorizer(user string, hash []byte) func(string, string) bool {
	return func(u, p string) bool {
		userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
		passOK := bcrypt.CompareHashAndPassword(hash, []byte(p)) == nil
		return userOK && passOK
	}
}
