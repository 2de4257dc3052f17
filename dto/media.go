package dto

import "time"

// Media library DTOs

type MediaUploadResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

type FolderRequest struct {
	Name     string `json:"name" validate:"required"`
	ParentID string `json:"parent_id"`
}

type FolderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent_id"`
	FileCount int       `json:"file_count"`
	CreatedAt time.Time `json:"created_at"`
}

type MediaFileResponse struct {
	ID        string    `json:"id"`
	FolderID  string    `json:"folder_id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// LibraryBrowseResponse backs the media picker: the current folder's
// subfolders and files together.
type LibraryBrowseResponse struct {
	Folders []FolderResponse    `json:"folders"`
	Files   []MediaFileResponse `json:"files"`
}

func (r FolderRequest) Validate() error {
	return GetValidator().Struct(r)
}
