package services

import (
	stdContext "context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/model"
	"github.com/skyward-academy/curricula_api/services/repositories"
	"github.com/skyward-academy/curricula_api/shared"
)

// LibraryService is the media library behind the builder's picker:
// folders of already-uploaded assets an operator can attach to a lesson
// without re-uploading.
type LibraryService struct {
	context.DefaultService
	sqlSvc   *PostgresService
	minioSvc *MinIOService
	repo     *repositories.MediaRepository
}

const LIBRARY_SVC = "library_svc"

func (svc LibraryService) Id() string {
	return LIBRARY_SVC
}

func (svc *LibraryService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	svc.repo = repositories.NewMediaRepository(svc.sqlSvc.Db())
	return nil
}

// ==================== FOLDERS ====================

func (svc *LibraryService) CreateFolder(req dto.FolderRequest) (*model.MediaFolder, error) {
	if req.ParentID != "" {
		if _, err := svc.repo.GetFolder(req.ParentID); err != nil {
			return nil, shared.NewNotFoundError(err, "Parent folder not found")
		}
	}

	folder, err := svc.repo.CreateFolder(&model.MediaFolder{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return folder, nil
}

func (svc *LibraryService) DeleteFolder(id string) error {
	if _, err := svc.repo.GetFolder(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return svc.sqlSvc.HandleError(svc.repo.DeleteFolder(id))
}

// Browse returns one folder level for the picker: its subfolders with
// file counts, plus its files. An empty folder id means the root.
func (svc *LibraryService) Browse(folderID string) (*dto.LibraryBrowseResponse, error) {
	folders, err := svc.repo.GetFolders(folderID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	files, err := svc.repo.GetFiles(folderID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := &dto.LibraryBrowseResponse{
		Folders: make([]dto.FolderResponse, 0, len(folders)),
		Files:   make([]dto.MediaFileResponse, 0, len(files)),
	}
	for _, f := range folders {
		count, _ := svc.repo.CountFiles(f.ID)
		resp.Folders = append(resp.Folders, dto.FolderResponse{
			ID:        f.ID,
			Name:      f.Name,
			ParentID:  f.ParentID,
			FileCount: int(count),
			CreatedAt: f.CreatedAt,
		})
	}
	for _, f := range files {
		resp.Files = append(resp.Files, dto.MediaFileResponse{
			ID:        f.ID,
			FolderID:  f.FolderID,
			Name:      f.Name,
			URL:       f.URL,
			Size:      f.Size,
			Type:      f.Type,
			CreatedAt: f.CreatedAt,
		})
	}
	return resp, nil
}

// ==================== FILES ====================

// UploadFile pushes a new asset straight into the library. Unlike the
// builder's staged attachments, library uploads go to durable storage
// immediately; the picker only ever hands out resolved URLs.
func (svc *LibraryService) UploadFile(ctx stdContext.Context, folderID string, file *multipart.FileHeader) (*dto.MediaFileResponse, error) {
	if folderID != "" {
		if _, err := svc.repo.GetFolder(folderID); err != nil {
			return nil, shared.NewNotFoundError(err, "Folder not found")
		}
	}

	if file.Size > 100*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "File too large. Maximum size: 100MB")
	}

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	id, _ := uuid.NewV7()
	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectName := fmt.Sprintf("library/%s%s", id.String(), ext)

	if _, err := svc.minioSvc.UploadFile(ctx, objectName, src, file.Size, file.Header.Get("Content-Type")); err != nil {
		return nil, shared.NewUploadError(err, "Failed to upload file to storage")
	}

	created, err := svc.repo.CreateFile(&model.MediaFile{
		ID:       id.String(),
		FolderID: folderID,
		Name:     file.Filename,
		URL:      svc.minioSvc.PublicURL(objectName),
		Size:     file.Size,
		Type:     file.Header.Get("Content-Type"),
	})
	if err != nil {
		// Clean up the object if the record can't be written.
		if delErr := svc.minioSvc.DeleteFile(ctx, objectName); delErr != nil {
			log.WithError(delErr).Warn("Failed to clean up orphaned library object")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.Printf("Uploaded library file %s (%s)", created.ID, created.Name)
	return &dto.MediaFileResponse{
		ID:        created.ID,
		FolderID:  created.FolderID,
		Name:      created.Name,
		URL:       created.URL,
		Size:      created.Size,
		Type:      created.Type,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (svc *LibraryService) GetFile(id string) (*model.MediaFile, error) {
	file, err := svc.repo.GetFile(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return file, nil
}

func (svc *LibraryService) DeleteFile(id string) error {
	if _, err := svc.repo.GetFile(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return svc.sqlSvc.HandleError(svc.repo.DeleteFile(id))
}
