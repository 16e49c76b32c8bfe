package handler

import (
	"strconv"

	"inapp-server/internal/apierrors"
	"inapp-server/internal/inventory/processor"
	"inapp-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.InventoryProcessor
	logger    *observability.Logger
}

func New(processor processor.InventoryProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// pathID reads a positive integer path parameter. On failure the response
// has already been written.
func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		apierrors.RespondWithInvalidID(c, param)
		return 0, false
	}
	return id, true
}
