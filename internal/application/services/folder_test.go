package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/folder"
	"file-storage-api/internal/domain/user"
	"file-storage-api/internal/infrastructure/mq"
)

func TestCreateFolderFromPath_BlankPathYieldsEmptyFolder(t *testing.T) {
	rabbit := NewFakeRabbitMQ()
	svc := NewFolderService(
		&FakeBlobStore{}, &memFolderRepo{}, &FakeFileRepo{},
		NewPathResolver(&memFolderRepo{}), zap.NewNop(), rabbit, testCounter(),
	)

	fld, err := svc.CreateFolderFromPath(context.Background(), "   ", uuid.New())
	require.NoError(t, err)
	require.NotNil(t, fld)
	assert.Equal(t, uuid.Nil, fld.ID, "blank path returns an empty record")
	assert.Empty(t, rabbit.Events())
}

func TestCreateFolderFromPath_CreatesAndPublishes(t *testing.T) {
	repo := &memFolderRepo{}
	rabbit := NewFakeRabbitMQ()
	svc := NewFolderService(
		&FakeBlobStore{}, repo, &FakeFileRepo{},
		NewPathResolver(repo), zap.NewNop(), rabbit, testCounter(),
	)
	owner := uuid.New()

	fld, err := svc.CreateFolderFromPath(context.Background(), "projects/alpha", owner)
	require.NoError(t, err)
	assert.Equal(t, "projects/alpha", fld.StoragePath)
	assert.Equal(t, owner, fld.OwnerID)

	events := rabbit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, mq.ActionFolderCreated, events[0].Action)
}

func TestGetFolderDetails(t *testing.T) {
	folderID := uuid.New()
	owner := uuid.New()
	fld := &folder.Folder{ID: folderID, Name: "docs", OwnerID: owner, StoragePath: "docs"}
	childID := uuid.New()

	folderRepo := &FakeFolderRepo{
		FetchFolderByIDFunc: func(ctx context.Context, id uuid.UUID) (*folder.Folder, error) {
			return fld, nil
		},
		FetchSubfoldersFunc: func(ctx context.Context, parentID uuid.UUID) (folder.Folders, error) {
			require.Equal(t, folderID, parentID)
			return folder.Folders{{ID: childID, Name: "2024", ParentFolderID: &folderID}}, nil
		},
	}
	fileRepo := &FakeFileRepo{
		FetchFilesByFolderFunc: func(ctx context.Context, id uuid.UUID) (file.Files, error) {
			return file.Files{{ID: uuid.New(), FileName: "notes.txt", FolderID: &folderID}}, nil
		},
	}
	svc := NewFolderService(
		&FakeBlobStore{}, folderRepo, fileRepo,
		NewPathResolver(&memFolderRepo{}), zap.NewNop(), NewFakeRabbitMQ(), testCounter(),
	)

	details, err := svc.GetFolderDetails(context.Background(), folderID)
	require.NoError(t, err)
	assert.Equal(t, "docs", details.Folder.Name)
	require.Len(t, details.Subfolders, 1)
	assert.Equal(t, childID, details.Subfolders[0].ID)
	require.Len(t, details.Files, 1)
	assert.Equal(t, "notes.txt", details.Files[0].FileName)
}

func TestGetUserFolders(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	repo := &memFolderRepo{}
	svc := NewFolderService(
		&FakeBlobStore{}, repo, &FakeFileRepo{},
		NewPathResolver(repo), zap.NewNop(), NewFakeRabbitMQ(), testCounter(),
	)

	_, err := svc.CreateFolderFromPath(context.Background(), "docs/2024", owner)
	require.NoError(t, err)
	_, err = svc.CreateFolderFromPath(context.Background(), "misc", stranger)
	require.NoError(t, err)

	folders, err := svc.GetUserFolders(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	for _, f := range folders {
		assert.Equal(t, owner, f.OwnerID)
	}
}

func TestGetUserFolders_RepoError(t *testing.T) {
	cause := errors.New("connection reset")
	folderRepo := &FakeFolderRepo{
		FetchUserFoldersFunc: func(ctx context.Context, ownerID user.ID) (folder.Folders, error) {
			return nil, cause
		},
	}
	svc := NewFolderService(
		&FakeBlobStore{}, folderRepo, &FakeFileRepo{},
		NewPathResolver(&memFolderRepo{}), zap.NewNop(), NewFakeRabbitMQ(), testCounter(),
	)

	_, err := svc.GetUserFolders(context.Background(), uuid.New())
	var sErr *StorageError
	require.ErrorAs(t, err, &sErr)
	require.ErrorIs(t, err, cause)
}

func TestGetFolderDetails_Missing(t *testing.T) {
	folderRepo := &FakeFolderRepo{
		FetchFolderByIDFunc: func(ctx context.Context, id uuid.UUID) (*folder.Folder, error) {
			return nil, nil
		},
	}
	svc := NewFolderService(
		&FakeBlobStore{}, folderRepo, &FakeFileRepo{},
		NewPathResolver(&memFolderRepo{}), zap.NewNop(), NewFakeRabbitMQ(), testCounter(),
	)

	_, err := svc.GetFolderDetails(context.Background(), uuid.New())
	var nErr *NotFoundError
	require.ErrorAs(t, err, &nErr)
}

func TestDeleteFolder_OwnerOnly(t *testing.T) {
	folderID := uuid.New()
	owner := uuid.New()

	folderRepo := &FakeFolderRepo{
		FetchFolderByIDFunc: func(ctx context.Context, id uuid.UUID) (*folder.Folder, error) {
			return &folder.Folder{ID: folderID, OwnerID: owner}, nil
		},
	}
	svc := NewFolderService(
		&FakeBlobStore{}, folderRepo, &FakeFileRepo{},
		NewPathResolver(&memFolderRepo{}), zap.NewNop(), NewFakeRabbitMQ(), testCounter(),
	)

	_, err := svc.DeleteFolder(context.Background(), folderID, uuid.New())
	var aErr *AuthorizationError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, "only the owner may delete a folder", aErr.Reason)
}

func TestDeleteFolder_AbsentIsIdempotent(t *testing.T) {
	folderRepo := &FakeFolderRepo{
		FetchFolderByIDFunc: func(ctx context.Context, id uuid.UUID) (*folder.Folder, error) {
			return nil, nil
		},
	}
	svc := NewFolderService(
		&FakeBlobStore{}, folderRepo, &FakeFileRepo{},
		NewPathResolver(&memFolderRepo{}), zap.NewNop(), NewFakeRabbitMQ(), testCounter(),
	)

	deleted, err := svc.DeleteFolder(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteFolder_CascadeCleansBlobs(t *testing.T) {
	folderID := uuid.New()
	owner := uuid.New()

	folderRepo := &FakeFolderRepo{
		FetchFolderByIDFunc: func(ctx context.Context, id uuid.UUID) (*folder.Folder, error) {
			return &folder.Folder{ID: folderID, OwnerID: owner, StoragePath: "docs"}, nil
		},
		DeleteFolderCascadeFunc: func(ctx context.Context, id uuid.UUID) (bool, []string, error) {
			require.Equal(t, folderID, id)
			return true, []string{"docs/a.txt", "docs/2024/b.pdf"}, nil
		},
	}

	var deletedKeys []string
	blob := &FakeBlobStore{
		DeleteObjectFunc: func(ctx context.Context, key string) error {
			deletedKeys = append(deletedKeys, key)
			return nil
		},
	}

	rabbit := NewFakeRabbitMQ()
	svc := NewFolderService(
		blob, folderRepo, &FakeFileRepo{},
		NewPathResolver(&memFolderRepo{}), zap.NewNop(), rabbit, testCounter(),
	)

	deleted, err := svc.DeleteFolder(context.Background(), folderID, owner)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"docs/a.txt", "docs/2024/b.pdf"}, deletedKeys)

	events := rabbit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, mq.ActionFolderDeleted, events[0].Action)
}

func TestDeleteFolder_BlobFailureDoesNotFail(t *testing.T) {
	folderID := uuid.New()
	owner := uuid.New()

	folderRepo := &FakeFolderRepo{
		FetchFolderByIDFunc: func(ctx context.Context, id uuid.UUID) (*folder.Folder, error) {
			return &folder.Folder{ID: folderID, OwnerID: owner}, nil
		},
		DeleteFolderCascadeFunc: func(ctx context.Context, id uuid.UUID) (bool, []string, error) {
			return true, []string{"docs/a.txt"}, nil
		},
	}
	blob := &FakeBlobStore{
		DeleteObjectFunc: func(ctx context.Context, key string) error {
			return assert.AnError
		},
	}
	svc := NewFolderService(
		blob, folderRepo, &FakeFileRepo{},
		NewPathResolver(&memFolderRepo{}), zap.NewNop(), NewFakeRabbitMQ(), testCounter(),
	)

	// Rows are gone; a failed blob delete leaves an orphan but the
	// operation still reports success.
	deleted, err := svc.DeleteFolder(context.Background(), folderID, owner)
	require.NoError(t, err)
	assert.True(t, deleted)
}
