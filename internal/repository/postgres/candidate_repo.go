package postgres

import (
	"context"
	"errors"

	"go-candidate-intake/internal/domain"
	"go-candidate-intake/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	msgDuplicateEmail    = "The email already exists in the database"
	msgCandidateNotFound = "No se pudo encontrar el registro del candidato con el ID proporcionado."
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Save(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	if c.ID != 0 {
		return r.update(ctx, c)
	}
	return r.create(ctx, c)
}

func (r *candidateRepo) create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	query := `INSERT INTO candidates (first_name, last_name, email, phone, address, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Conflict(msgDuplicateEmail)
		}
		return nil, translateError(err)
	}
	return c, nil
}

func (r *candidateRepo) update(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	query := `UPDATE candidates SET first_name=$2, last_name=$3, email=$4, phone=$5, address=$6, updated_at=NOW()
	          WHERE id=$1`
	tag, err := conn(ctx, r.db).Exec(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Conflict(msgDuplicateEmail)
		}
		return nil, translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NotFound(msgCandidateNotFound)
	}
	return c, nil
}

func (r *candidateRepo) FindOne(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, '')
	          FROM candidates WHERE id = $1`
	var c domain.Candidate
	err := conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &c, nil
}
