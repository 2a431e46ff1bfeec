package postgres

import (
	"context"
	"errors"

	"go-candidate-intake/internal/domain"
	"go-candidate-intake/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const msgExperienceNotFound = "No se pudo encontrar el registro de la experiencia laboral con el ID proporcionado."

type workExperienceRepo struct {
	db *pgxpool.Pool
}

func NewWorkExperienceRepository(db *pgxpool.Pool) domain.WorkExperienceRepository {
	return &workExperienceRepo{db: db}
}

func (r *workExperienceRepo) Save(ctx context.Context, w *domain.WorkExperience) (*domain.WorkExperience, error) {
	if w.ID != 0 {
		return r.update(ctx, w)
	}
	query := `INSERT INTO work_experiences (candidate_id, company, position, description, start_date, end_date)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		w.CandidateID, w.Company, w.Position, w.Description, w.StartDate, w.EndDate,
	).Scan(&w.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return w, nil
}

func (r *workExperienceRepo) update(ctx context.Context, w *domain.WorkExperience) (*domain.WorkExperience, error) {
	query := `UPDATE work_experiences SET company=$2, position=$3, description=$4, start_date=$5, end_date=$6
	          WHERE id=$1`
	tag, err := conn(ctx, r.db).Exec(ctx, query,
		w.ID, w.Company, w.Position, w.Description, w.StartDate, w.EndDate,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NotFound(msgExperienceNotFound)
	}
	return w, nil
}

func (r *workExperienceRepo) FindOne(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	query := `SELECT id, candidate_id, company, position, COALESCE(description, ''), start_date, end_date
	          FROM work_experiences WHERE id = $1`
	var w domain.WorkExperience
	err := conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&w.ID, &w.CandidateID, &w.Company, &w.Position, &w.Description, &w.StartDate, &w.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &w, nil
}

func (r *workExperienceRepo) FindAll(ctx context.Context, candidateID int64) ([]domain.WorkExperience, error) {
	query := `SELECT id, candidate_id, company, position, COALESCE(description, ''), start_date, end_date
	          FROM work_experiences WHERE candidate_id = $1 ORDER BY start_date DESC`
	rows, err := conn(ctx, r.db).Query(ctx, query, candidateID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := []domain.WorkExperience{}
	for rows.Next() {
		var w domain.WorkExperience
		if err := rows.Scan(&w.ID, &w.CandidateID, &w.Company, &w.Position, &w.Description, &w.StartDate, &w.EndDate); err != nil {
			return nil, translateError(err)
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return items, nil
}
