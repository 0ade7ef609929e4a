// Package router wires the HTTP handlers into a gin engine.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/resumeforge/resumeforge-server/internal/api/http/handler"
	"github.com/resumeforge/resumeforge-server/internal/api/http/middleware"
	"github.com/resumeforge/resumeforge-server/internal/logger"
)

// New builds the gin engine with all routes registered under /api/v1.
func New(auth *handler.Auth, resume *handler.Resume, l *logger.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(l))
	engine.Use(cors.Default())

	v1 := engine.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/forgot-password", auth.ForgotPassword)
		authGroup.POST("/reset-password", auth.ResetPassword)
		authGroup.POST("/google", auth.Google)
	}

	resumeGroup := v1.Group("/resume")
	{
		resumeGroup.POST("/generate", resume.Generate)
		resumeGroup.POST("/save", resume.Save)
		resumeGroup.GET("/user/:userEmail", resume.ListByUserEmail)
		resumeGroup.GET("/:id", resume.GetByID)
		resumeGroup.DELETE("/:id", resume.Delete)
	}

	interviewGroup := v1.Group("/interview")
	{
		interviewGroup.POST("/questions/skills", resume.InterviewQuestionsBySkills)
		interviewGroup.GET("/questions", resume.InterviewQuestions)
	}

	return engine
}
