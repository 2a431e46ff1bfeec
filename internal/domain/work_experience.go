package domain

import (
	"context"
	"time"
)

type WorkExperience struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidateId"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// ExperienceInput is a work-experience entry as submitted, dates still textual.
type ExperienceInput struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type WorkExperienceRepository interface {
	Save(ctx context.Context, w *WorkExperience) (*WorkExperience, error)
	FindOne(ctx context.Context, id int64) (*WorkExperience, error)
	FindAll(ctx context.Context, candidateID int64) ([]WorkExperience, error)
}
