package postgres

import (
	"context"
	"errors"

	"go-candidate-intake/internal/domain"
	"go-candidate-intake/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const msgResumeNotFound = "No se pudo encontrar el registro del resume con el ID proporcionado."

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Save(ctx context.Context, res *domain.Resume) (*domain.Resume, error) {
	if res.ID != 0 {
		return r.update(ctx, res)
	}
	query := `INSERT INTO resumes (candidate_id, file_path, file_type, upload_date)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		res.CandidateID, res.FilePath, res.FileType, res.UploadDate,
	).Scan(&res.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return res, nil
}

func (r *resumeRepo) update(ctx context.Context, res *domain.Resume) (*domain.Resume, error) {
	query := `UPDATE resumes SET file_path=$2, file_type=$3, upload_date=$4 WHERE id=$1`
	tag, err := conn(ctx, r.db).Exec(ctx, query,
		res.ID, res.FilePath, res.FileType, res.UploadDate,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NotFound(msgResumeNotFound)
	}
	return res, nil
}

func (r *resumeRepo) FindOne(ctx context.Context, id int64) (*domain.Resume, error) {
	query := `SELECT id, candidate_id, file_path, file_type, upload_date FROM resumes WHERE id = $1`
	var res domain.Resume
	err := conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&res.ID, &res.CandidateID, &res.FilePath, &res.FileType, &res.UploadDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &res, nil
}

func (r *resumeRepo) FindAll(ctx context.Context, candidateID int64) ([]domain.Resume, error) {
	query := `SELECT id, candidate_id, file_path, file_type, upload_date
	          FROM resumes WHERE candidate_id = $1 ORDER BY upload_date DESC`
	rows, err := conn(ctx, r.db).Query(ctx, query, candidateID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := []domain.Resume{}
	for rows.Next() {
		var res domain.Resume
		if err := rows.Scan(&res.ID, &res.CandidateID, &res.FilePath, &res.FileType, &res.UploadDate); err != nil {
			return nil, translateError(err)
		}
		items = append(items, res)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return items, nil
}
