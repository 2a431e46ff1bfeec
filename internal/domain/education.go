package domain

import (
	"context"
	"time"
)

type Education struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidateId"`
	Institution string     `json:"institution"`
	Title       string     `json:"title"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// EducationInput is an education entry as submitted, dates still textual.
type EducationInput struct {
	Institution string `json:"institution"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type EducationRepository interface {
	Save(ctx context.Context, e *Education) (*Education, error)
	FindOne(ctx context.Context, id int64) (*Education, error)
	FindAll(ctx context.Context, candidateID int64) ([]Education, error)
}
