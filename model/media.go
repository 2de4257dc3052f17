package model

import "time"

// MediaFolder is one node of the media library's folder tree. ParentID
// is empty for root folders.
type MediaFolder struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	ParentID  string    `json:"parent_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MediaFile is an uploaded library asset. URL is the durable object
// storage location handed out by the picker.
type MediaFile struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	FolderID  string    `json:"folder_id" gorm:"index"`
	Name      string    `json:"name" gorm:"not null"`
	URL       string    `json:"url" gorm:"not null"`
	Size      int64     `json:"size"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationship
	Folder MediaFolder `json:"-" gorm:"foreignKey:FolderID"`
}
