package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resumeforge/resumeforge-server/internal/logger"
	"github.com/resumeforge/resumeforge-server/internal/model"
)

// ResumeService defines the resume operations the resume handler needs.
type ResumeService interface {
	Generate(ctx context.Context, description string) (map[string]any, error)
	Save(ctx context.Context, resume model.Resume) (model.Resume, error)
	ListByUserEmail(ctx context.Context, userEmail string) ([]model.Resume, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
	InterviewQuestions(ctx context.Context, skills []string) (map[string]any, error)
}

// Resume handles the /resume and /interview endpoints.
type Resume struct {
	resumes ResumeService
	logger  *logger.Logger
}

// NewResume creates a Resume handler.
func NewResume(resumes ResumeService, logger *logger.Logger) *Resume {
	return &Resume{
		resumes: resumes,
		logger:  logger,
	}
}

type generateRequest struct {
	UserDescription string `json:"userDescription"`
}

type interviewQuestionsRequest struct {
	Skills []any `json:"skills"`
}

// Generate handles POST /resume/generate.
func (h *Resume) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	document, err := h.resumes.Generate(c.Request.Context(), req.UserDescription)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

// Save handles POST /resume/save.
func (h *Resume) Save(c *gin.Context) {
	var resume model.Resume
	if err := c.ShouldBindJSON(&resume); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	saved, err := h.resumes.Save(c.Request.Context(), resume)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListByUserEmail handles GET /resume/user/:userEmail.
func (h *Resume) ListByUserEmail(c *gin.Context) {
	resumes, err := h.resumes.ListByUserEmail(c.Request.Context(), c.Param("userEmail"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resumes)
}

// GetByID handles GET /resume/:id.
func (h *Resume) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid resume id"})
		return
	}

	resume, err := h.resumes.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

// Delete handles DELETE /resume/:id.
func (h *Resume) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid resume id"})
		return
	}

	if err := h.resumes.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// InterviewQuestionsBySkills handles POST /interview/questions/skills.
// When generation fails the endpoint degrades to canned interview prep
// instead of an error, so the UI always has content to show.
func (h *Resume) InterviewQuestionsBySkills(c *gin.Context) {
	var req interviewQuestionsRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	skills := parseSkills(req.Skills)

	document, err := h.resumes.InterviewQuestions(c.Request.Context(), skills)
	if err != nil {
		h.logger.Error("failed to generate interview questions",
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, fallbackInterviewPrep(skills))
		return
	}

	c.JSON(http.StatusOK, document)
}

// InterviewQuestions handles GET /interview/questions.
func (h *Resume) InterviewQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, fallbackInterviewPrep([]string{}))
}

func parseSkills(raw []any) []string {
	skills := make([]string, 0, len(raw))
	for _, item := range raw {
		if item == nil {
			continue
		}
		if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func fallbackInterviewPrep(skills []string) gin.H {
	focus := "software engineering"
	if len(skills) > 0 {
		focus = strings.Join(skills, ", ")
	}

	questions := []gin.H{
		{
			"question": "Walk me through your background and highlight experience with " + focus,
			"answer": "I have built production-focused projects and consistently improved performance, " +
				"maintainability, and delivery quality. My strongest contributions are in problem solving, " +
				"communication, and ownership.",
			"category": "behavioral",
		},
		{
			"question": "How have you applied " + focus + " in a real project?",
			"answer": "I start by defining clear requirements, break work into milestones, and validate outcomes " +
				"with metrics. I emphasize clean implementation, testing, and stakeholder communication throughout " +
				"the project lifecycle.",
			"category": "technical",
		},
		{
			"question": "Describe a challenging issue you solved and your approach.",
			"answer": "I reproduced the issue, collected logs and signals, isolated root cause, and shipped an " +
				"incremental fix. Then I added monitoring and documentation to prevent recurrence.",
			"category": "problem-solving",
		},
	}

	return gin.H{
		"meta":      "Fallback interview prep generated",
		"skills":    skills,
		"questions": questions,
		"total":     len(questions),
	}
}
