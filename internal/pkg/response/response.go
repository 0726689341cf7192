package response

import "github.com/gofiber/fiber/v3"

// HeaderRequestID carries the per-request id set by the access log middleware.
const HeaderRequestID = "X-Request-ID"

// SemanticResponse is the envelope of every JSON body the API writes.
// RequestID is only filled on errors so clients can quote it.
type SemanticResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	RequestID string `json:"request_id,omitempty"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageInternalServerError = "internal server error"
	MessageServiceUnavailable  = "service unavailable"
	MessageError               = "error"
)

func Success(c fiber.Ctx, status int, message string, data any) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: messageOrDefault(message, st), Data: data})
}

func Error(c fiber.Ctx, status int, message string, data any) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(SemanticResponse{
		Status:    st,
		Message:   messageOrDefault(message, st),
		Data:      data,
		RequestID: string(c.Response().Header.Peek(HeaderRequestID)),
	})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func messageOrDefault(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessage(status)
}

// DefaultMessage is the lower-case message used when a handler gives none.
func DefaultMessage(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	case fiber.StatusServiceUnavailable:
		return MessageServiceUnavailable
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
