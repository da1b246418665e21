package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	fileDomain "file-storage-api/internal/domain/file"
	folderDomain "file-storage-api/internal/domain/folder"
	shareDomain "file-storage-api/internal/domain/share"
	userDomain "file-storage-api/internal/domain/user"
)

const testSecret = "test-secret"

func SignJWT(secret, userID, username string, exp time.Duration) (string, error) {
	type Claims struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		jwtv5.RegisteredClaims
	}
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(exp)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func bearerFor(t *testing.T, userID uuid.UUID) map[string]string {
	t.Helper()
	tok, err := SignJWT(testSecret, userID.String(), "tester", time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doMultipartReq(t *testing.T, r *gin.Engine, path string, fileName string, content []byte, fields, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func errBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]any
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	s, _ := resp["error"].(string)
	return s
}

type FakeUserService struct {
	CreateUserFunc         func(ctx context.Context, u userDomain.User, password string) (*userDomain.User, error)
	FindUserByUsernameFunc func(ctx context.Context, username string) (*userDomain.User, error)
	FindUsersFunc          func(ctx context.Context, page int) (userDomain.Users, error)
	RecordLoginFunc        func(ctx context.Context, id userDomain.ID) error
}

func (f *FakeUserService) CreateUser(ctx context.Context, u userDomain.User, password string) (*userDomain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, u, password)
}
func (f *FakeUserService) FindUserByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	if f.FindUserByUsernameFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByUsernameFunc(ctx, username)
}
func (f *FakeUserService) FindUsers(ctx context.Context, page int) (userDomain.Users, error) {
	if f.FindUsersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUsersFunc(ctx, page)
}
func (f *FakeUserService) RecordLogin(ctx context.Context, id userDomain.ID) error {
	if f.RecordLoginFunc == nil {
		return nil
	}
	return f.RecordLoginFunc(ctx, id)
}

type FakeAuthService struct {
	GenerateTokenFunc func(u *userDomain.User, requestPassword string) (string, error)
}

func (f *FakeAuthService) GenerateToken(u *userDomain.User, requestPassword string) (string, error) {
	if f.GenerateTokenFunc == nil {
		return "", errors.New("not used")
	}
	return f.GenerateTokenFunc(u, requestPassword)
}

type FakeFileService struct {
	UploadFileFunc      func(ctx context.Context, r io.Reader, fileName string, fileSize int64, folderPath string, callerID userDomain.ID) (*fileDomain.File, error)
	DownloadFileFunc    func(ctx context.Context, fileID uuid.UUID, callerID userDomain.ID) (io.ReadCloser, *fileDomain.File, error)
	DeleteFileFunc      func(ctx context.Context, fileID uuid.UUID, callerID userDomain.ID) (bool, error)
	GetFileMetadataFunc func(ctx context.Context, fileID uuid.UUID) (*fileDomain.File, error)
	GetFileVersionsFunc func(ctx context.Context, fileID uuid.UUID) (fileDomain.Versions, error)
}

func (f *FakeFileService) UploadFile(ctx context.Context, r io.Reader, fileName string, fileSize int64, folderPath string, callerID userDomain.ID) (*fileDomain.File, error) {
	if f.UploadFileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UploadFileFunc(ctx, r, fileName, fileSize, folderPath, callerID)
}
func (f *FakeFileService) DownloadFile(ctx context.Context, fileID uuid.UUID, callerID userDomain.ID) (io.ReadCloser, *fileDomain.File, error) {
	if f.DownloadFileFunc == nil {
		return nil, nil, errors.New("not used")
	}
	return f.DownloadFileFunc(ctx, fileID, callerID)
}
func (f *FakeFileService) DeleteFile(ctx context.Context, fileID uuid.UUID, callerID userDomain.ID) (bool, error) {
	if f.DeleteFileFunc == nil {
		return false, errors.New("not used")
	}
	return f.DeleteFileFunc(ctx, fileID, callerID)
}
func (f *FakeFileService) GetFileMetadata(ctx context.Context, fileID uuid.UUID) (*fileDomain.File, error) {
	if f.GetFileMetadataFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetFileMetadataFunc(ctx, fileID)
}
func (f *FakeFileService) GetFileVersions(ctx context.Context, fileID uuid.UUID) (fileDomain.Versions, error) {
	if f.GetFileVersionsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetFileVersionsFunc(ctx, fileID)
}

type FakeFolderService struct {
	CreateFolderFromPathFunc func(ctx context.Context, path string, callerID userDomain.ID) (*folderDomain.Folder, error)
	GetUserFoldersFunc       func(ctx context.Context, callerID userDomain.ID) (folderDomain.Folders, error)
	GetFolderDetailsFunc     func(ctx context.Context, folderID uuid.UUID) (*folderDomain.Details, error)
	DeleteFolderFunc         func(ctx context.Context, folderID uuid.UUID, callerID userDomain.ID) (bool, error)
}

func (f *FakeFolderService) CreateFolderFromPath(ctx context.Context, path string, callerID userDomain.ID) (*folderDomain.Folder, error) {
	if f.CreateFolderFromPathFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFolderFromPathFunc(ctx, path, callerID)
}
func (f *FakeFolderService) GetUserFolders(ctx context.Context, callerID userDomain.ID) (folderDomain.Folders, error) {
	if f.GetUserFoldersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetUserFoldersFunc(ctx, callerID)
}
func (f *FakeFolderService) GetFolderDetails(ctx context.Context, folderID uuid.UUID) (*folderDomain.Details, error) {
	if f.GetFolderDetailsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetFolderDetailsFunc(ctx, folderID)
}
func (f *FakeFolderService) DeleteFolder(ctx context.Context, folderID uuid.UUID, callerID userDomain.ID) (bool, error) {
	if f.DeleteFolderFunc == nil {
		return false, errors.New("not used")
	}
	return f.DeleteFolderFunc(ctx, folderID, callerID)
}

type FakeSharingService struct {
	HasResourceAccessFunc    func(ctx context.Context, resourceID uuid.UUID, ownerID, callerID userDomain.ID) (bool, error)
	CreateShareFunc          func(ctx context.Context, req shareDomain.Share, callerID userDomain.ID) (*shareDomain.Share, error)
	GetSharesForResourceFunc func(ctx context.Context, resourceID uuid.UUID) (shareDomain.Shares, error)
}

func (f *FakeSharingService) HasResourceAccess(ctx context.Context, resourceID uuid.UUID, ownerID, callerID userDomain.ID) (bool, error) {
	if f.HasResourceAccessFunc == nil {
		return false, errors.New("not used")
	}
	return f.HasResourceAccessFunc(ctx, resourceID, ownerID, callerID)
}
func (f *FakeSharingService) CreateShare(ctx context.Context, req shareDomain.Share, callerID userDomain.ID) (*shareDomain.Share, error) {
	if f.CreateShareFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateShareFunc(ctx, req, callerID)
}
func (f *FakeSharingService) GetSharesForResource(ctx context.Context, resourceID uuid.UUID) (shareDomain.Shares, error) {
	if f.GetSharesForResourceFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetSharesForResourceFunc(ctx, resourceID)
}
