package postgres

import (
	"context"
	"errors"

	"go-candidate-intake/internal/domain"
	"go-candidate-intake/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const msgEducationNotFound = "No se pudo encontrar el registro de la educación con el ID proporcionado."

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) Save(ctx context.Context, e *domain.Education) (*domain.Education, error) {
	if e.ID != 0 {
		return r.update(ctx, e)
	}
	// EndDate is *time.Time, so a missing end date lands as NULL like any
	// other absent field.
	query := `INSERT INTO educations (candidate_id, institution, title, start_date, end_date)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		e.CandidateID, e.Institution, e.Title, e.StartDate, e.EndDate,
	).Scan(&e.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return e, nil
}

func (r *educationRepo) update(ctx context.Context, e *domain.Education) (*domain.Education, error) {
	query := `UPDATE educations SET institution=$2, title=$3, start_date=$4, end_date=$5
	          WHERE id=$1`
	tag, err := conn(ctx, r.db).Exec(ctx, query,
		e.ID, e.Institution, e.Title, e.StartDate, e.EndDate,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NotFound(msgEducationNotFound)
	}
	return e, nil
}

func (r *educationRepo) FindOne(ctx context.Context, id int64) (*domain.Education, error) {
	query := `SELECT id, candidate_id, institution, title, start_date, end_date
	          FROM educations WHERE id = $1`
	var e domain.Education
	err := conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&e.ID, &e.CandidateID, &e.Institution, &e.Title, &e.StartDate, &e.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &e, nil
}

func (r *educationRepo) FindAll(ctx context.Context, candidateID int64) ([]domain.Education, error) {
	query := `SELECT id, candidate_id, institution, title, start_date, end_date
	          FROM educations WHERE candidate_id = $1 ORDER BY start_date DESC`
	rows, err := conn(ctx, r.db).Query(ctx, query, candidateID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Institution, &e.Title, &e.StartDate, &e.EndDate); err != nil {
			return nil, translateError(err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return items, nil
}
