package handlers

import (
	"errors"
	"net/http"

	"financial-health/internal/api/models"
	"financial-health/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// respondStoreError maps store.ErrNotFound to 404 and anything else to 500.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("storage error")
	respondError(c, http.StatusInternalServerError, "STORAGE_ERROR", "failed to access storage")
}
