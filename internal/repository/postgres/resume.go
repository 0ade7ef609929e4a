package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/resumeforge/resumeforge-server/internal/model"
)

var _ model.ResumeStore = (*ResumeRepository)(nil)

const resumeColumns = `id, user_email, job_description, full_name, email, phone, location, summary,
	skill_1, skill_2, skill_3, skill_4, skill_5, skill_6, skill_7, skill_8, skill_9, skill_10,
	company_1, position_1, duration_1, company_2, position_2, duration_2,
	degree_1, university_1, graduation_year_1, project_1, project_2, cover_letter,
	created_at, updated_at`

// ResumeRepository persists resumes in PostgreSQL.
type ResumeRepository struct {
	db Querier
}

// NewResumeRepository creates a ResumeRepository backed by db.
func NewResumeRepository(db Querier) *ResumeRepository {
	return &ResumeRepository{
		db: db,
	}
}

// Create inserts a new resume.
func (r *ResumeRepository) Create(ctx context.Context, resume model.Resume) (model.Resume, error) {
	query := `INSERT INTO resumes (` + resumeColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			          $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32)
			  RETURNING ` + resumeColumns

	saved, err := scanResume(r.db.QueryRow(ctx, query, resumeArgs(resume)...))
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to create resume: %w", err)
	}

	return saved, nil
}

// GetByID returns the resume with the given id.
func (r *ResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`

	resume, err := scanResume(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Resume{}, model.ErrNotFound
		}
		return model.Resume{}, fmt.Errorf("failed to get resume by id: %w", err)
	}

	return resume, nil
}

// ListByUserEmail returns the user's resumes, newest first.
func (r *ResumeRepository) ListByUserEmail(ctx context.Context, userEmail string) ([]model.Resume, error) {
	query := `SELECT ` + resumeColumns + `
			  FROM resumes WHERE user_email = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := make([]model.Resume, 0)
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}

	return resumes, nil
}

// Delete removes the resume with the given id.
func (r *ResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func resumeArgs(resume model.Resume) []any {
	return []any{
		resume.ID, resume.UserEmail, resume.JobDescription, resume.FullName,
		resume.Email, resume.Phone, resume.Location, resume.Summary,
		resume.Skill1, resume.Skill2, resume.Skill3, resume.Skill4, resume.Skill5,
		resume.Skill6, resume.Skill7, resume.Skill8, resume.Skill9, resume.Skill10,
		resume.Company1, resume.Position1, resume.Duration1,
		resume.Company2, resume.Position2, resume.Duration2,
		resume.Degree1, resume.University1, resume.GraduationYear1,
		resume.Project1, resume.Project2, resume.CoverLetter,
		resume.CreatedAt, resume.UpdatedAt,
	}
}

func scanResume(row pgx.Row) (model.Resume, error) {
	var resume model.Resume
	err := row.Scan(
		&resume.ID, &resume.UserEmail, &resume.JobDescription, &resume.FullName,
		&resume.Email, &resume.Phone, &resume.Location, &resume.Summary,
		&resume.Skill1, &resume.Skill2, &resume.Skill3, &resume.Skill4, &resume.Skill5,
		&resume.Skill6, &resume.Skill7, &resume.Skill8, &resume.Skill9, &resume.Skill10,
		&resume.Company1, &resume.Position1, &resume.Duration1,
		&resume.Company2, &resume.Position2, &resume.Duration2,
		&resume.Degree1, &resume.University1, &resume.GraduationYear1,
		&resume.Project1, &resume.Project2, &resume.CoverLetter,
		&resume.CreatedAt, &resume.UpdatedAt,
	)
	return resume, err
}
