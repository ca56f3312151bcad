package domain

import (
	"time"

	"github.com/google/uuid"
)

// Image is an uploaded picture belonging to a group. Filename is the name the
// file is stored under on disk; OriginalName is the name it was uploaded with.
// swagger:model Image
type Image struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	GroupID      string    `json:"group_id"`
	UploadedAt   time.Time `json:"uploaded_at"`
	UploadedBy   string    `json:"uploaded_by"`
}

// NewImage returns an Image with a fresh id and the upload time set to now.
func NewImage(filename, originalName, groupID, uploadedBy string) Image {
	return Image{
		ID:           uuid.NewString(),
		Filename:     filename,
		OriginalName: originalName,
		GroupID:      groupID,
		UploadedAt:   time.Now().UTC(),
		UploadedBy:   uploadedBy,
	}
}
