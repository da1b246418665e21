package rest

import (
	"fmt"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/infrastructure/jwt"
	fileDTO "file-storage-api/internal/interface/api/rest/dto/file"
	"file-storage-api/internal/interface/api/rest/middleware"
	"file-storage-api/internal/interface/api/rest/validator"
)

// 50MB
const maxUploadSize = int64(50 << 20)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	r.POST(RouteFiles, authed, fc.UploadFileHandler)
	r.GET(RouteFile, authed, fc.GetFileHandler)
	r.GET(RouteFileDownload, authed, fc.DownloadFileHandler)
	r.GET(RouteFileVersions, authed, fc.GetFileVersionsHandler)
	r.DELETE(RouteFile, authed, fc.DeleteFileHandler)

	return fc
}

func (fc *FileController) UploadFileHandler(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is empty"})
		return
	}
	if fh.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer src.Close()

	f, err := fc.fileService.UploadFile(
		c.Request.Context(),
		src,
		fh.Filename,
		fh.Size,
		c.PostForm("folder_path"),
		caller,
	)
	if err != nil {
		respondServiceError(c, fc.logger, "UploadFile()", err)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFile(*f))
}

func (fc *FileController) GetFileHandler(c *gin.Context) {
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	f, err := fc.fileService.GetFileMetadata(c.Request.Context(), fileID)
	if err != nil {
		respondServiceError(c, fc.logger, "GetFileMetadata()", err)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFile(*f))
}

func (fc *FileController) DownloadFileHandler(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	rc, f, err := fc.fileService.DownloadFile(c.Request.Context(), fileID, caller)
	if err != nil {
		respondServiceError(c, fc.logger, "DownloadFile()", err)
		return
	}
	defer rc.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", asciiFilename(f.FileName)),
	}
	c.DataFromReader(http.StatusOK, f.FileSize, "application/octet-stream", rc, headers)
}

func (fc *FileController) GetFileVersionsHandler(c *gin.Context) {
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	versions, err := fc.fileService.GetFileVersions(c.Request.Context(), fileID)
	if err != nil {
		respondServiceError(c, fc.logger, "GetFileVersions()", err)
		return
	}

	c.JSON(http.StatusOK, fileDTO.VersionsResponseData{
		Data: fileDTO.ToResponseVersions(versions),
	})
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	deleted, err := fc.fileService.DeleteFile(c.Request.Context(), fileID, caller)
	if err != nil {
		respondServiceError(c, fc.logger, "DeleteFile()", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// asciiFilename folds the stored name down to ASCII so the
// Content-Disposition header stays parseable for every client.
func asciiFilename(name string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if r > unicode.MaxASCII || r == '"' || r == '\\' {
				return '_'
			}
			return r
		}),
	)
	out, _, err := transform.String(t, name)
	if err != nil || out == "" {
		return "download"
	}
	return out
}
