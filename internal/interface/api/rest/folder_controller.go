package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/infrastructure/jwt"
	folderDTO "file-storage-api/internal/interface/api/rest/dto/folder"
	"file-storage-api/internal/interface/api/rest/middleware"
	"file-storage-api/internal/interface/api/rest/validator"
)

type FolderController struct {
	folderService ports.FolderService
	logger        *zap.Logger
}

func NewFolderController(
	r *gin.Engine,
	folderService ports.FolderService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FolderController {
	fc := &FolderController{
		folderService: folderService,
		logger:        logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	r.POST(RouteFolders, authed, fc.CreateFolderHandler)
	r.GET(RouteFolders, authed, fc.GetFoldersHandler)
	r.GET(RouteFolder, authed, fc.GetFolderHandler)
	r.DELETE(RouteFolder, authed, fc.DeleteFolderHandler)

	return fc
}

func (fc *FolderController) CreateFolderHandler(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req folderDTO.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	fld, err := fc.folderService.CreateFolderFromPath(c.Request.Context(), req.Path, caller)
	if err != nil {
		respondServiceError(c, fc.logger, "CreateFolderFromPath()", err)
		return
	}

	c.JSON(http.StatusCreated, folderDTO.ToResponseFolder(*fld))
}

func (fc *FolderController) GetFoldersHandler(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	folders, err := fc.folderService.GetUserFolders(c.Request.Context(), caller)
	if err != nil {
		respondServiceError(c, fc.logger, "GetUserFolders()", err)
		return
	}

	c.JSON(http.StatusOK, folderDTO.ResponseData{
		Data: folderDTO.ToResponseFolders(folders),
	})
}

func (fc *FolderController) GetFolderHandler(c *gin.Context) {
	ok, folderID := validator.IsUUID(c.Param("folder_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "folder_id must be a valid UUID"},
		)
		return
	}

	details, err := fc.folderService.GetFolderDetails(c.Request.Context(), folderID)
	if err != nil {
		respondServiceError(c, fc.logger, "GetFolderDetails()", err)
		return
	}

	c.JSON(http.StatusOK, folderDTO.ToResponseDetails(*details))
}

func (fc *FolderController) DeleteFolderHandler(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	ok, folderID := validator.IsUUID(c.Param("folder_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "folder_id must be a valid UUID"},
		)
		return
	}

	deleted, err := fc.folderService.DeleteFolder(c.Request.Context(), folderID, caller)
	if err != nil {
		respondServiceError(c, fc.logger, "DeleteFolder()", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
