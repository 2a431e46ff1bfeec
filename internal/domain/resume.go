package domain

import (
	"context"
	"time"
)

type Resume struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidateId"`
	FilePath    string    `json:"filePath"`
	FileType    string    `json:"fileType"`
	UploadDate  time.Time `json:"uploadDate"`
}

// NewResume stamps the upload date at construction time. Callers never supply it.
func NewResume(candidateID int64, filePath, fileType string) *Resume {
	return &Resume{
		CandidateID: candidateID,
		FilePath:    filePath,
		FileType:    fileType,
		UploadDate:  time.Now(),
	}
}

type ResumeRepository interface {
	Save(ctx context.Context, r *Resume) (*Resume, error)
	FindOne(ctx context.Context, id int64) (*Resume, error)
	FindAll(ctx context.Context, candidateID int64) ([]Resume, error)
}
