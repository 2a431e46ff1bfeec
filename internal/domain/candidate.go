package domain

import "context"

// Candidate holds the scalar fields of a candidate record. Phone and Address
// are optional; an empty string means the field was not supplied. Email is the
// globally unique business key.
type Candidate struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// CandidateSubmission is the intake payload as it arrives at the boundary.
// Nested entries keep their textual dates and the CV keeps its loose shape
// until validation normalizes them into precise records.
type CandidateSubmission struct {
	ID              int64             `json:"id"`
	FirstName       string            `json:"firstName"`
	LastName        string            `json:"lastName"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Address         string            `json:"address"`
	Educations      []EducationInput  `json:"educations"`
	WorkExperiences []ExperienceInput `json:"workExperiences"`
	CV              any               `json:"cv"`
}

// CandidateProfile is the assembled read model: candidate scalars plus the
// three child collections. The collections are always present, possibly empty.
type CandidateProfile struct {
	Candidate
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Resumes        []Resume         `json:"resumes"`
}

type CandidateRepository interface {
	// Save creates the candidate when ID is zero and updates it otherwise.
	Save(ctx context.Context, c *Candidate) (*Candidate, error)
	// FindOne returns (nil, nil) when no candidate exists for the id.
	FindOne(ctx context.Context, id int64) (*Candidate, error)
}

type CandidateUsecase interface {
	AddCandidate(ctx context.Context, data *CandidateSubmission) (*Candidate, error)
	GetCandidate(ctx context.Context, id int64) (*CandidateProfile, error)
}

// TxManager scopes a sequence of repository calls to one store transaction.
// If the callback returns an error nothing inside it is committed.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
