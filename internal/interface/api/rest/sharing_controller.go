package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/infrastructure/jwt"
	shareDTO "file-storage-api/internal/interface/api/rest/dto/share"
	"file-storage-api/internal/interface/api/rest/middleware"
	"file-storage-api/internal/interface/api/rest/validator"
)

type SharingController struct {
	sharingService ports.SharingService
	logger         *zap.Logger
}

func NewSharingController(
	r *gin.Engine,
	sharingService ports.SharingService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *SharingController {
	sc := &SharingController{
		sharingService: sharingService,
		logger:         logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	r.POST(RouteShares, authed, sc.CreateShareHandler)
	r.GET(RouteResourceShares, authed, sc.GetResourceSharesHandler)

	return sc
}

func (sc *SharingController) CreateShareHandler(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req shareDTO.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	sDomain, err := shareDTO.ToDomainShare(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	s, err := sc.sharingService.CreateShare(c.Request.Context(), sDomain, caller)
	if err != nil {
		respondServiceError(c, sc.logger, "CreateShare()", err)
		return
	}

	c.JSON(http.StatusOK, shareDTO.ToResponseShare(*s))
}

func (sc *SharingController) GetResourceSharesHandler(c *gin.Context) {
	ok, resourceID := validator.IsUUID(c.Param("resource_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "resource_id must be a valid UUID"},
		)
		return
	}

	shares, err := sc.sharingService.GetSharesForResource(c.Request.Context(), resourceID)
	if err != nil {
		respondServiceError(c, sc.logger, "GetSharesForResource()", err)
		return
	}
	if len(shares) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no shares found for resource"})
		return
	}

	c.JSON(http.StatusOK, shareDTO.ResponseData{
		Data: shareDTO.ToResponseShares(shares),
	})
}
