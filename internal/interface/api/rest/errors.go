package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"file-storage-api/internal/application/services"
	"file-storage-api/internal/domain/user"
	folderDB "file-storage-api/internal/infrastructure/db/postgres/folder"
	"file-storage-api/internal/interface/api/rest/middleware"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a 500 and gets logged; the taxonomy
// errors are the caller's fault and are returned verbatim.
func respondServiceError(c *gin.Context, logger *zap.Logger, op string, err error) {
	var (
		vErr *services.ValidationError
		nErr *services.NotFoundError
		aErr *services.AuthorizationError
	)

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
	case errors.As(err, &nErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nErr.Error()})
	case errors.As(err, &aErr):
		c.JSON(http.StatusForbidden, gin.H{"error": aErr.Reason})
	case errors.Is(err, folderDB.ErrStoragePathConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		logger.Error(op+" error", zap.Error(err))
	}
}

// callerID pulls the authenticated user out of the gin context set by
// the auth middleware.
func callerID(c *gin.Context) (user.ID, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return uuid.Nil, false
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
