package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/resumeforge/resumeforge-server/internal/logger"
	"github.com/resumeforge/resumeforge-server/internal/model"
)

// Resume orchestrates AI resume generation and persistence.
type Resume struct {
	resumes   model.ResumeStore
	generator model.ResumeGenerator
	logger    *logger.Logger
	now       func() time.Time
}

// NewResume creates a Resume service.
func NewResume(resumes model.ResumeStore, generator model.ResumeGenerator, logger *logger.Logger) *Resume {
	return &Resume{
		resumes:   resumes,
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate produces a structured resume document from a free-form
// description.
func (r *Resume) Generate(ctx context.Context, description string) (map[string]any, error) {
	safeDescription, err := required(description, "Description is required")
	if err != nil {
		return nil, err
	}

	document, err := r.generator.GenerateResume(ctx, safeDescription)
	if err != nil {
		r.logger.Error("Resume service: failed to generate resume",
			"error", err.Error())
		return nil, err
	}

	r.logger.Info("Resume service: resume generated")

	return document, nil
}

// Save stores a resume, assigning an id and timestamps when absent.
func (r *Resume) Save(ctx context.Context, resume model.Resume) (model.Resume, error) {
	if resume.ID == uuid.Nil {
		resume.ID = uuid.New()
	}

	now := r.now()
	if resume.CreatedAt.IsZero() {
		resume.CreatedAt = now
	}
	resume.UpdatedAt = now

	saved, err := r.resumes.Create(ctx, resume)
	if err != nil {
		r.logger.Error("Resume service: failed to save resume",
			"user_email", resume.UserEmail,
			"error", err.Error())
		return model.Resume{}, fmt.Errorf("failed to save resume: %w", err)
	}

	r.logger.Info("Resume service: resume saved",
		"resume_id", saved.ID,
		"user_email", saved.UserEmail)

	return saved, nil
}

// ListByUserEmail returns the user's resumes, newest first.
func (r *Resume) ListByUserEmail(ctx context.Context, userEmail string) ([]model.Resume, error) {
	resumes, err := r.resumes.ListByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes, nil
}

// GetByID returns a single resume.
func (r *Resume) GetByID(ctx context.Context, id uuid.UUID) (model.Resume, error) {
	resume, err := r.resumes.GetByID(ctx, id)
	if err != nil {
		return model.Resume{}, err
	}

	return resume, nil
}

// Delete removes a resume.
func (r *Resume) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.resumes.Delete(ctx, id); err != nil {
		return err
	}

	r.logger.Info("Resume service: resume deleted",
		"resume_id", id)

	return nil
}

// InterviewQuestions produces interview prep content for the given skills.
func (r *Resume) InterviewQuestions(ctx context.Context, skills []string) (map[string]any, error) {
	document, err := r.generator.GenerateInterviewQuestions(ctx, skills)
	if err != nil {
		r.logger.Error("Resume service: failed to generate interview questions",
			"error", err.Error())
		return nil, err
	}

	return document, nil
}
