package middleware

import (
	"errors"
	"log"

	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError is what handlers return; ErrorMiddleware renders it into the
// response envelope. Cause is logged, never sent.
type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("HTTP panic recovered | rid=%s path=%s panic=%v", requestID(c), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= 500 {
			m.logger.Printf("HTTP error | rid=%s method=%s path=%s status=%d error=%v", requestID(c), c.Method(), c.Path(), status, err)
		}
		return response.Error(c, status, msg, data)
	}
}

func normalizeError(err error) (int, string, any) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		switch {
		case status <= 0, status >= 500 && status != fiber.StatusServiceUnavailable:
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return status, msg, appErr.Data
	}

	// Domain validation errors that reach here unmapped are still the
	// caller's fault.
	var inputErr *user.InvalidInputError
	if errors.As(err, &inputErr) {
		return fiber.StatusBadRequest, "Bad request", map[string]string{
			"field":  inputErr.Field,
			"reason": inputErr.Reason,
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || (status >= 500 && status != fiber.StatusServiceUnavailable) {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return status, msg, nil
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

func requestID(c fiber.Ctx) string {
	return string(c.Response().Header.Peek(response.HeaderRequestID))
}
