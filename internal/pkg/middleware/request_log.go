package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const accessLogFormat = "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n"

// RequestID tags each request with a uuid, reusing an incoming X-Request-ID
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	})
}

// AccessLog writes one line per request including the request id
func AccessLog() fiber.Handler {
	return logger.New(logger.Config{
		Format: accessLogFormat,
	})
}
