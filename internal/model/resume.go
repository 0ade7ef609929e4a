package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ResumeStore defines persistence operations for resumes.
type ResumeStore interface {
	Create(ctx context.Context, resume Resume) (Resume, error)
	GetByID(ctx context.Context, id uuid.UUID) (Resume, error)
	ListByUserEmail(ctx context.Context, userEmail string) ([]Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResumeGenerator produces AI-backed resume and interview-question
// content from free-form user input.
type ResumeGenerator interface {
	GenerateResume(ctx context.Context, description string) (map[string]any, error)
	GenerateInterviewQuestions(ctx context.Context, skills []string) (map[string]any, error)
}

// Resume is a stored resume. The flat column layout mirrors the wire
// contract the frontend saves and renders: up to ten skills, two
// experience entries, one education entry, and two projects.
type Resume struct {
	ID              uuid.UUID `json:"id"`
	UserEmail       string    `json:"userEmail"`
	JobDescription  string    `json:"jobDescription"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Location        string    `json:"location"`
	Summary         string    `json:"summary"`
	Skill1          string    `json:"skill1"`
	Skill2          string    `json:"skill2"`
	Skill3          string    `json:"skill3"`
	Skill4          string    `json:"skill4"`
	Skill5          string    `json:"skill5"`
	Skill6          string    `json:"skill6"`
	Skill7          string    `json:"skill7"`
	Skill8          string    `json:"skill8"`
	Skill9          string    `json:"skill9"`
	Skill10         string    `json:"skill10"`
	Company1        string    `json:"company1"`
	Position1       string    `json:"position1"`
	Duration1       string    `json:"duration1"`
	Company2        string    `json:"company2"`
	Position2       string    `json:"position2"`
	Duration2       string    `json:"duration2"`
	Degree1         string    `json:"degree1"`
	University1     string    `json:"university1"`
	GraduationYear1 string    `json:"graduationYear1"`
	Project1        string    `json:"project1"`
	Project2        string    `json:"project2"`
	CoverLetter     string    `json:"coverLetter"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
