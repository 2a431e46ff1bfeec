package validation

import (
	"go-candidate-intake/internal/domain"
	"go-candidate-intake/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// ValidateCandidate checks a whole submission and fails on the first invalid
// field. The message of that failure is surfaced to the caller verbatim.
// Submissions carrying an id are edits of an already trusted record and skip
// validation entirely.
func ValidateCandidate(v *validator.Validate, data *domain.CandidateSubmission) error {
	if data.ID != 0 {
		return nil
	}

	if data.FirstName == "" || data.LastName == "" || data.Email == "" {
		return apperror.BadRequest("Missing required fields")
	}

	if err := v.Var(data.FirstName, "min=2,max=100,person_name"); err != nil {
		return apperror.BadRequest("Invalid name")
	}
	if err := v.Var(data.LastName, "min=2,max=100,person_name"); err != nil {
		return apperror.BadRequest("Invalid name")
	}
	if err := v.Var(data.Email, "strict_email"); err != nil {
		return apperror.BadRequest("Invalid email")
	}
	if data.Phone != "" {
		if err := v.Var(data.Phone, "mobile_phone"); err != nil {
			return apperror.BadRequest("Invalid phone")
		}
	}
	if data.Address != "" {
		if err := v.Var(data.Address, "max=100"); err != nil {
			return apperror.BadRequest("Invalid address")
		}
	}

	for i := range data.Educations {
		if err := ValidateEducation(v, &data.Educations[i]); err != nil {
			return err
		}
	}
	for i := range data.WorkExperiences {
		if err := ValidateExperience(v, &data.WorkExperiences[i]); err != nil {
			return err
		}
	}
	if data.CV != nil {
		if _, _, err := ValidateCV(data.CV); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEducation checks one nested education entry.
func ValidateEducation(v *validator.Validate, e *domain.EducationInput) error {
	if err := v.Var(e.Institution, "required,max=100"); err != nil {
		return apperror.BadRequest("Invalid institution")
	}
	if err := v.Var(e.Title, "required,max=100"); err != nil {
		return apperror.BadRequest("Invalid title")
	}
	if err := v.Var(e.StartDate, "required,iso_date"); err != nil {
		return apperror.BadRequest("Invalid date")
	}
	if e.EndDate != "" {
		if err := v.Var(e.EndDate, "iso_date"); err != nil {
			return apperror.BadRequest("Invalid end date")
		}
	}
	return nil
}

// ValidateExperience checks one nested work-experience entry.
func ValidateExperience(v *validator.Validate, w *domain.ExperienceInput) error {
	if err := v.Var(w.Company, "required,max=100"); err != nil {
		return apperror.BadRequest("Invalid company")
	}
	if err := v.Var(w.Position, "required,max=100"); err != nil {
		return apperror.BadRequest("Invalid position")
	}
	if w.Description != "" {
		if err := v.Var(w.Description, "max=200"); err != nil {
			return apperror.BadRequest("Invalid description")
		}
	}
	if err := v.Var(w.StartDate, "required,iso_date"); err != nil {
		return apperror.BadRequest("Invalid date")
	}
	if w.EndDate != "" {
		if err := v.Var(w.EndDate, "iso_date"); err != nil {
			return apperror.BadRequest("Invalid end date")
		}
	}
	return nil
}

// ValidateCV checks the loosely shaped résumé payload and normalizes it into
// its file path and file type. validator/v10 works on struct tags, so this one
// inspects the dynamic value by hand.
func ValidateCV(cv any) (filePath, fileType string, err error) {
	obj, ok := cv.(map[string]any)
	if !ok {
		return "", "", apperror.BadRequest("Invalid CV")
	}
	rawPath, hasPath := obj["filePath"]
	rawType, hasType := obj["fileType"]
	if !hasPath || !hasType {
		return "", "", apperror.BadRequest("Invalid CV")
	}
	filePath, pathOK := rawPath.(string)
	fileType, typeOK := rawType.(string)
	if !pathOK || !typeOK {
		return "", "", apperror.BadRequest("Invalid CV data")
	}
	return filePath, fileType, nil
}
