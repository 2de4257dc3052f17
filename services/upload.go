package services

import (
	"bytes"
	stdContext "context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/skyward-academy/curricula_api/curriculum"
	"github.com/skyward-academy/curricula_api/shared"
)

// UploadService stages attached binaries in memory until the builder's
// save pipeline asks for them, then pushes them to MinIO. A staged blob
// is addressed by the key carried inside curriculum.LocalFile; the tree
// itself never holds bytes.
type UploadService struct {
	context.DefaultService
	minioSvc *MinIOService

	mu     sync.Mutex
	staged map[string]stagedBlob
}

type stagedBlob struct {
	data        []byte
	name        string
	contentType string
	kind        string
	stagedAt    time.Time
}

const UPLOAD_SVC = "upload_svc"

func (svc UploadService) Id() string {
	return UPLOAD_SVC
}

func (svc *UploadService) Configure(ctx *context.Context) error {
	svc.staged = make(map[string]stagedBlob)
	return svc.DefaultService.Configure(ctx)
}

func (svc *UploadService) Start() error {
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// ==================== STAGING METHODS ====================

// Stage validates and buffers an uploaded file, returning the local
// reference the builder drops into the curriculum tree.
func (svc *UploadService) Stage(kind string, file *multipart.FileHeader) (*curriculum.LocalFile, error) {
	switch kind {
	case "video":
		if !svc.isValidVideoFile(file.Filename) {
			return nil, shared.NewBadRequestError(nil, "Invalid video file format. Supported: MP4, MOV, WEBM")
		}
		if file.Size > 100*1024*1024 {
			return nil, shared.NewBadRequestError(nil, "Video file too large. Maximum size: 100MB")
		}
	case "image":
		if !svc.isValidImageFile(file.Filename) {
			return nil, shared.NewBadRequestError(nil, "Invalid image file format. Supported: JPG, PNG, WEBP")
		}
		if file.Size > 5*1024*1024 {
			return nil, shared.NewBadRequestError(nil, "Image file too large. Maximum size: 5MB")
		}
	case "document":
		if !svc.isValidDocumentFile(file.Filename) {
			return nil, shared.NewBadRequestError(nil, "Invalid document file format. Supported: PDF, DOC, DOCX, PPT, PPTX, ZIP")
		}
		if file.Size > 25*1024*1024 {
			return nil, shared.NewBadRequestError(nil, "Document file too large. Maximum size: 25MB")
		}
	default:
		return nil, shared.NewBadRequestError(nil, "Unknown upload kind: "+kind)
	}

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to read uploaded file")
	}

	id, _ := uuid.NewV7()
	key := id.String()

	svc.mu.Lock()
	svc.staged[key] = stagedBlob{
		data:        data,
		name:        file.Filename,
		contentType: file.Header.Get("Content-Type"),
		kind:        kind,
		stagedAt:    time.Now(),
	}
	svc.mu.Unlock()

	return &curriculum.LocalFile{
		Key:  key,
		Name: file.Filename,
		Size: file.Size,
		Type: file.Header.Get("Content-Type"),
	}, nil
}

// Discard drops a staged blob the operator removed before saving.
func (svc *UploadService) Discard(key string) {
	svc.mu.Lock()
	delete(svc.staged, key)
	svc.mu.Unlock()
}

// ==================== PIPELINE UPLOADER ====================

// Upload resolves one staged blob into durable storage. Implements
// curriculum.Uploader for the save pipeline. The blob stays staged:
// the pipeline adopts resolved references only after every upload in a
// save succeeds, so an earlier blob must survive a later failure for
// the retry to find it. The builder discards keys once a save has
// adopted their resolved references.
func (svc *UploadService) Upload(ctx stdContext.Context, file curriculum.LocalFile) (curriculum.RemoteFile, error) {
	svc.mu.Lock()
	blob, ok := svc.staged[file.Key]
	svc.mu.Unlock()
	if !ok {
		return curriculum.RemoteFile{}, fmt.Errorf("no staged content for %q", file.Name)
	}

	objectName := svc.objectName(blob.kind, file.Name)
	if _, err := svc.minioSvc.UploadFile(ctx, objectName, bytes.NewReader(blob.data), int64(len(blob.data)), blob.contentType); err != nil {
		return curriculum.RemoteFile{}, err
	}

	log.Printf("Uploaded staged file %s to %s", file.Name, objectName)

	return curriculum.RemoteFile{
		Name: file.Name,
		URL:  svc.minioSvc.PublicURL(objectName),
		Size: int64(len(blob.data)),
		Type: blob.contentType,
	}, nil
}

func (svc *UploadService) objectName(kind, filename string) string {
	var subDir string
	switch kind {
	case "video":
		subDir = "videos"
	case "image":
		subDir = "images"
	case "document":
		subDir = "documents"
	default:
		subDir = "misc"
	}

	ext := filepath.Ext(filename)
	id, _ := uuid.NewV7()
	return fmt.Sprintf("%s/%s%s", subDir, id.String(), ext)
}

// ==================== FILE VALIDATION METHODS ====================

func (svc *UploadService) isValidVideoFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".mp4" || ext == ".mov" || ext == ".webm"
}

func (svc *UploadService) isValidImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".webp"
}

func (svc *UploadService) isValidDocumentFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf", ".doc", ".docx", ".ppt", ".pptx", ".zip":
		return true
	}
	return false
}
