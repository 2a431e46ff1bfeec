package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-candidate-intake/internal/domain"
	"go-candidate-intake/pkg/apperror"
	"go-candidate-intake/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

type candidateUsecase struct {
	candidates  domain.CandidateRepository
	educations  domain.EducationRepository
	experiences domain.WorkExperienceRepository
	resumes     domain.ResumeRepository
	tx          domain.TxManager
	validate    *validator.Validate
}

func NewCandidateUsecase(
	candidates domain.CandidateRepository,
	educations domain.EducationRepository,
	experiences domain.WorkExperienceRepository,
	resumes domain.ResumeRepository,
	tx domain.TxManager,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		candidates:  candidates,
		educations:  educations,
		experiences: experiences,
		resumes:     resumes,
		tx:          tx,
		validate:    validate,
	}
}

// AddCandidate validates the submission and persists the candidate plus every
// nested entry as one atomic unit. Children are written in dependent calls once
// the candidate identity is known; a failure in any of them rolls the whole
// write back. The returned value carries the candidate scalars and id only;
// the assembled aggregate is GetCandidate's job.
func (u *candidateUsecase) AddCandidate(ctx context.Context, data *domain.CandidateSubmission) (*domain.Candidate, error) {
	if err := validation.ValidateCandidate(u.validate, data); err != nil {
		return nil, err
	}

	// Scalars only; nested collections never enter the candidate payload.
	candidate := &domain.Candidate{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
	}

	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		saved, err := u.candidates.Save(ctx, candidate)
		if err != nil {
			return err
		}
		candidate = saved

		for i := range data.Educations {
			if _, err := u.educations.Save(ctx, newEducation(saved.ID, &data.Educations[i])); err != nil {
				return err
			}
		}
		for i := range data.WorkExperiences {
			if _, err := u.experiences.Save(ctx, newWorkExperience(saved.ID, &data.WorkExperiences[i])); err != nil {
				return err
			}
		}
		if data.CV != nil {
			filePath, fileType, err := validation.ValidateCV(data.CV)
			if err != nil {
				return err
			}
			if _, err := u.resumes.Save(ctx, domain.NewResume(saved.ID, filePath, fileType)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

// GetCandidate assembles the full profile. The three child lookups are
// independent, so they run concurrently and are joined before the aggregate is
// returned; a failure in any of them aborts the whole read.
func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	candidate, err := u.candidates.FindOne(ctx, id)
	if err != nil {
		return nil, fetchFailure(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	profile := &domain.CandidateProfile{
		Candidate:      *candidate,
		Education:      []domain.Education{},
		WorkExperience: []domain.WorkExperience{},
		Resumes:        []domain.Resume{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := u.educations.FindAll(gctx, id)
		if err != nil {
			return err
		}
		if items != nil {
			profile.Education = items
		}
		return nil
	})
	g.Go(func() error {
		items, err := u.experiences.FindAll(gctx, id)
		if err != nil {
			return err
		}
		if items != nil {
			profile.WorkExperience = items
		}
		return nil
	})
	g.Go(func() error {
		items, err := u.resumes.FindAll(gctx, id)
		if err != nil {
			return err
		}
		if items != nil {
			profile.Resumes = items
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fetchFailure(err)
	}
	return profile, nil
}

func fetchFailure(err error) error {
	return apperror.New(http.StatusInternalServerError,
		fmt.Sprintf("Failed to fetch candidate data: %s", err.Error()), err)
}

const dateLayout = "2006-01-02"

func newEducation(candidateID int64, in *domain.EducationInput) *domain.Education {
	start, _ := time.Parse(dateLayout, in.StartDate)
	e := &domain.Education{
		CandidateID: candidateID,
		Institution: in.Institution,
		Title:       in.Title,
		StartDate:   start,
	}
	if in.EndDate != "" {
		if end, err := time.Parse(dateLayout, in.EndDate); err == nil {
			e.EndDate = &end
		}
	}
	return e
}

func newWorkExperience(candidateID int64, in *domain.ExperienceInput) *domain.WorkExperience {
	start, _ := time.Parse(dateLayout, in.StartDate)
	w := &domain.WorkExperience{
		CandidateID: candidateID,
		Company:     in.Company,
		Position:    in.Position,
		Description: in.Description,
		StartDate:   start,
	}
	if in.EndDate != "" {
		if end, err := time.Parse(dateLayout, in.EndDate); err == nil {
			w.EndDate = &end
		}
	}
	return w
}
