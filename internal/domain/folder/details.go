package folder

import (
	"file-storage-api/internal/domain/file"
)

// Details is a folder together with its direct contents. Children are
// listed as stored; the caller's permission against individual entries
// is not re-checked here.
type Details struct {
	Folder     Folder
	Files      file.Files
	Subfolders Folders
}
