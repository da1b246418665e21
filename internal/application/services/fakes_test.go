package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/folder"
	"file-storage-api/internal/domain/share"
	"file-storage-api/internal/domain/user"
	"file-storage-api/internal/infrastructure/mq"
)

// memFolderRepo keeps folders in insertion order so unscoped name lookup
// behaves like the SQL "first created wins" query.
type memFolderRepo struct {
	mu      sync.Mutex
	folders []*folder.Folder

	createCalls int
	failCreate  error
}

func (m *memFolderRepo) CreateFolder(_ context.Context, req folder.Folder) (*folder.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	if m.failCreate != nil {
		return nil, m.failCreate
	}
	for _, f := range m.folders {
		if f.StoragePath == req.StoragePath {
			return nil, errors.New("folder storage path already exists")
		}
	}
	req.ID = uuid.New()
	f := req
	m.folders = append(m.folders, &f)
	return &f, nil
}

func (m *memFolderRepo) FetchFolderByID(_ context.Context, id uuid.UUID) (*folder.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.folders {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (m *memFolderRepo) FetchFolderByName(_ context.Context, name string) (*folder.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.folders {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, nil
}

func (m *memFolderRepo) FetchFolderByStoragePath(_ context.Context, storagePath string) (*folder.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.folders {
		if f.StoragePath == storagePath {
			return f, nil
		}
	}
	return nil, nil
}

func (m *memFolderRepo) FetchSubfolders(_ context.Context, parentID uuid.UUID) (folder.Folders, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out folder.Folders
	for _, f := range m.folders {
		if f.ParentFolderID != nil && *f.ParentFolderID == parentID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFolderRepo) FetchUserFolders(_ context.Context, ownerID user.ID) (folder.Folders, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out folder.Folders
	for _, f := range m.folders {
		if f.OwnerID == ownerID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFolderRepo) DeleteFolderCascade(_ context.Context, id uuid.UUID) (bool, []string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.folders {
		if f.ID == id {
			m.folders = append(m.folders[:i], m.folders[i+1:]...)
			return true, nil, nil
		}
	}
	return false, nil, nil
}

type FakeFolderRepo struct {
	CreateFolderFunc             func(ctx context.Context, req folder.Folder) (*folder.Folder, error)
	FetchFolderByIDFunc          func(ctx context.Context, id uuid.UUID) (*folder.Folder, error)
	FetchFolderByNameFunc        func(ctx context.Context, name string) (*folder.Folder, error)
	FetchFolderByStoragePathFunc func(ctx context.Context, storagePath string) (*folder.Folder, error)
	FetchSubfoldersFunc          func(ctx context.Context, parentID uuid.UUID) (folder.Folders, error)
	FetchUserFoldersFunc         func(ctx context.Context, ownerID user.ID) (folder.Folders, error)
	DeleteFolderCascadeFunc      func(ctx context.Context, id uuid.UUID) (bool, []string, error)
}

func (f *FakeFolderRepo) CreateFolder(ctx context.Context, req folder.Folder) (*folder.Folder, error) {
	if f.CreateFolderFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFolderFunc(ctx, req)
}
func (f *FakeFolderRepo) FetchFolderByID(ctx context.Context, id uuid.UUID) (*folder.Folder, error) {
	if f.FetchFolderByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchFolderByIDFunc(ctx, id)
}
func (f *FakeFolderRepo) FetchFolderByName(ctx context.Context, name string) (*folder.Folder, error) {
	if f.FetchFolderByNameFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchFolderByNameFunc(ctx, name)
}
func (f *FakeFolderRepo) FetchFolderByStoragePath(ctx context.Context, storagePath string) (*folder.Folder, error) {
	if f.FetchFolderByStoragePathFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchFolderByStoragePathFunc(ctx, storagePath)
}
func (f *FakeFolderRepo) FetchSubfolders(ctx context.Context, parentID uuid.UUID) (folder.Folders, error) {
	if f.FetchSubfoldersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchSubfoldersFunc(ctx, parentID)
}
func (f *FakeFolderRepo) FetchUserFolders(ctx context.Context, ownerID user.ID) (folder.Folders, error) {
	if f.FetchUserFoldersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserFoldersFunc(ctx, ownerID)
}
func (f *FakeFolderRepo) DeleteFolderCascade(ctx context.Context, id uuid.UUID) (bool, []string, error) {
	if f.DeleteFolderCascadeFunc == nil {
		return false, nil, errors.New("not used")
	}
	return f.DeleteFolderCascadeFunc(ctx, id)
}

type FakeFileRepo struct {
	CreateFileFunc         func(ctx context.Context, req *file.File) (*file.File, error)
	FetchFileByIDFunc      func(ctx context.Context, id uuid.UUID) (*file.File, error)
	FetchFilesByFolderFunc func(ctx context.Context, folderID uuid.UUID) (file.Files, error)
	FetchFileVersionsFunc  func(ctx context.Context, fileID uuid.UUID) (file.Versions, error)
	DeleteFileFunc         func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (f *FakeFileRepo) CreateFile(ctx context.Context, req *file.File) (*file.File, error) {
	if f.CreateFileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFileFunc(ctx, req)
}
func (f *FakeFileRepo) FetchFileByID(ctx context.Context, id uuid.UUID) (*file.File, error) {
	if f.FetchFileByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchFileByIDFunc(ctx, id)
}
func (f *FakeFileRepo) FetchFilesByFolder(ctx context.Context, folderID uuid.UUID) (file.Files, error) {
	if f.FetchFilesByFolderFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchFilesByFolderFunc(ctx, folderID)
}
func (f *FakeFileRepo) FetchFileVersions(ctx context.Context, fileID uuid.UUID) (file.Versions, error) {
	if f.FetchFileVersionsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchFileVersionsFunc(ctx, fileID)
}
func (f *FakeFileRepo) DeleteFile(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.DeleteFileFunc == nil {
		return false, errors.New("not used")
	}
	return f.DeleteFileFunc(ctx, id)
}

type FakeShareRepo struct {
	CreateShareFunc           func(ctx context.Context, req share.Share) (*share.Share, error)
	FetchSharesByResourceFunc func(ctx context.Context, resourceID uuid.UUID) (share.Shares, error)
}

func (f *FakeShareRepo) CreateShare(ctx context.Context, req share.Share) (*share.Share, error) {
	if f.CreateShareFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateShareFunc(ctx, req)
}
func (f *FakeShareRepo) FetchSharesByResource(ctx context.Context, resourceID uuid.UUID) (share.Shares, error) {
	if f.FetchSharesByResourceFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchSharesByResourceFunc(ctx, resourceID)
}

type FakeBlobStore struct {
	PutObjectFunc    func(ctx context.Context, key string, r io.Reader, size int64) (string, error)
	GetObjectFunc    func(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteObjectFunc func(ctx context.Context, key string) error
}

func (f *FakeBlobStore) PutObject(ctx context.Context, key string, r io.Reader, size int64) (string, error) {
	if f.PutObjectFunc == nil {
		return "", errors.New("not used")
	}
	return f.PutObjectFunc(ctx, key, r, size)
}
func (f *FakeBlobStore) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	if f.GetObjectFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetObjectFunc(ctx, key)
}
func (f *FakeBlobStore) DeleteObject(ctx context.Context, key string) error {
	if f.DeleteObjectFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteObjectFunc(ctx, key)
}
func (f *FakeBlobStore) GetPublicURL(key string) string { return "http://blob.local/" + key }

// FakeRabbitMQ absorbs events on a buffered channel so services never
// block in tests.
type FakeRabbitMQ struct {
	in chan mq.Event
}

func NewFakeRabbitMQ() *FakeRabbitMQ {
	return &FakeRabbitMQ{in: make(chan mq.Event, 64)}
}

func (f *FakeRabbitMQ) Connect(context.Context, string) error { return nil }
func (f *FakeRabbitMQ) Init() error                           { return nil }
func (f *FakeRabbitMQ) PublisherWorker(context.Context)       {}
func (f *FakeRabbitMQ) GetInputChan() chan mq.Event           { return f.in }
func (f *FakeRabbitMQ) GetConn() *amqp091.Connection          { return nil }

func (f *FakeRabbitMQ) Events() []mq.Event {
	var out []mq.Event
	for {
		select {
		case e := <-f.in:
			out = append(out, e)
		default:
			return out
		}
	}
}

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_general_counters"},
		[]string{"result"},
	)
}

type fixedAccess struct {
	ok  bool
	err error
}

func (f fixedAccess) HasResourceAccess(context.Context, uuid.UUID, user.ID, user.ID) (bool, error) {
	return f.ok, f.err
}
