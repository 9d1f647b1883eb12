package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errIdempotencyKeyRequired = errors.New("Idempotency-Key header is required")
	errIdempotencyKeyFormat   = errors.New("invalid idempotency key format")
)

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errIdempotencyKeyFormat
	}

	return key, nil
}
