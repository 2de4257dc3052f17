package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/skyward-academy/curricula_api/model"
	"gorm.io/gorm"
)

type MediaRepository struct {
	BaseRepository
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *MediaRepository) GetFolder(id string) (*model.MediaFolder, error) {
	var folder model.MediaFolder
	if err := ds.db.First(&folder, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

func (ds *MediaRepository) GetFolders(parentID string) ([]model.MediaFolder, error) {
	var folders []model.MediaFolder
	if err := ds.db.Where("parent_id = ?", parentID).Order("name ASC").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

func (ds *MediaRepository) CreateFolder(folder *model.MediaFolder) (*model.MediaFolder, error) {
	id, _ := uuid.NewV7()
	folder.ID = id.String()
	folder.CreatedAt = time.Now()
	folder.UpdatedAt = time.Now()
	if err := ds.db.Create(folder).Error; err != nil {
		return nil, err
	}
	return folder, nil
}

func (ds *MediaRepository) DeleteFolder(id string) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("folder_id = ?", id).Delete(&model.MediaFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.MediaFolder{}, "id = ?", id).Error
	})
}

func (ds *MediaRepository) GetFile(id string) (*model.MediaFile, error) {
	var file model.MediaFile
	if err := ds.db.First(&file, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (ds *MediaRepository) GetFiles(folderID string) ([]model.MediaFile, error) {
	var files []model.MediaFile
	if err := ds.db.Where("folder_id = ?", folderID).Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (ds *MediaRepository) CountFiles(folderID string) (int64, error) {
	var n int64
	err := ds.db.Model(&model.MediaFile{}).Where("folder_id = ?", folderID).Count(&n).Error
	return n, err
}

func (ds *MediaRepository) CreateFile(file *model.MediaFile) (*model.MediaFile, error) {
	id, _ := uuid.NewV7()
	file.ID = id.String()
	file.CreatedAt = time.Now()
	file.UpdatedAt = time.Now()
	if err := ds.db.Create(file).Error; err != nil {
		return nil, err
	}
	return file, nil
}

func (ds *MediaRepository) DeleteFile(id string) error {
	return ds.db.Delete(&model.MediaFile{}, "id = ?", id).Error
}
