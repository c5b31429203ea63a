package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/nihongo-test/internal/controller"
	"github.com/lshigami/nihongo-test/internal/dto"
	"github.com/lshigami/nihongo-test/internal/middleware"
	"github.com/lshigami/nihongo-test/internal/service"
	"github.com/rs/zerolog/log"
)

type TestAttemptController struct {
	attemptService service.AttemptService
	sessions       *service.SectionSessions
	advisor        service.StudyAdvisor
}

func NewTestAttemptController(as service.AttemptService, sessions *service.SectionSessions, advisor service.StudyAdvisor) *TestAttemptController {
	return &TestAttemptController{
		attemptService: as,
		sessions:       sessions,
		advisor:        advisor,
	}
}

// CreateAttempt godoc
// @Summary (User) Start a test attempt
// @Description Freezes a question snapshot for the level and starts a full test or a single-section practice.
// @Tags User - Test Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt body dto.CreateAttemptRequest true "Level, mode and optional practice section"
// @Success 201 {object} dto.AttemptCreatedDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid level, mode or section"
// @Failure 422 {object} dto.ErrorResponse "Not enough questions in the bank"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-attempts [post]
func (c *TestAttemptController) CreateAttempt(ctx *gin.Context) {
	var req dto.CreateAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	attempt, err := c.attemptService.Create(ctx.Request.Context(), middleware.OwnerID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// ListAttempts godoc
// @Summary (User) List my test attempts
// @Tags User - Test Attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TestAttemptSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-attempts [get]
func (c *TestAttemptController) ListAttempts(ctx *gin.Context) {
	attempts, err := c.attemptService.ListByOwner(ctx.Request.Context(), middleware.OwnerID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttempt godoc
// @Summary (User) Get one of my test attempts
// @Description Correct answers and scores are included only once the attempt is completed.
// @Tags User - Test Attempts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Success 200 {object} dto.TestAttemptDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /test-attempts/{id} [get]
func (c *TestAttemptController) GetAttempt(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	attempt, err := c.attemptService.Get(ctx.Request.Context(), middleware.OwnerID(ctx), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// RecordAnswer godoc
// @Summary (User) Answer a question
// @Description Sets, changes or clears (null) the answer to one question of an unlocked section.
// @Tags User - Test Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Param question_id path int true "Question ID"
// @Param answer body dto.RecordAnswerRequest true "Selected choice index, or null"
// @Success 200 {object} dto.UserAnswerDTO
// @Failure 400 {object} dto.ErrorResponse "Question not in attempt or invalid choice"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt completed or section locked"
// @Router /test-attempts/{id}/answers/{question_id} [put]
func (c *TestAttemptController) RecordAnswer(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return
	}
	var req dto.RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	answer, err := c.attemptService.RecordAnswer(ctx.Request.Context(), middleware.OwnerID(ctx), id, uint(questionID), req.SelectedAnswer)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// StartSection godoc
// @Summary (User) Start the countdown for a section
// @Description Starts a server-side timer; the section is submitted automatically when it runs out.
// @Tags User - Test Attempts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Param section path string true "Section type"
// @Success 200 {object} dto.SectionTimerDTO
// @Failure 400 {object} dto.ErrorResponse "Section not in attempt"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt completed or section locked"
// @Router /test-attempts/{id}/sections/{section}/start [post]
func (c *TestAttemptController) StartSection(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	timer, err := c.sessions.Start(ctx.Request.Context(), middleware.OwnerID(ctx), id, ctx.Param("section"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, timer)
}

// SectionTimer godoc
// @Summary (User) Remaining time for a running section
// @Tags User - Test Attempts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Param section path string true "Section type"
// @Success 200 {object} dto.SectionTimerDTO
// @Failure 404 {object} dto.ErrorResponse "No running timer"
// @Router /test-attempts/{id}/sections/{section}/timer [get]
func (c *TestAttemptController) SectionTimer(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	timer, err := c.sessions.Remaining(middleware.OwnerID(ctx), id, ctx.Param("section"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, timer)
}

// SubmitSection godoc
// @Summary (User) Submit a section
// @Description Locks the section. When every required section is submitted the attempt is scored and completed.
// @Tags User - Test Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Param section path string true "Section type"
// @Param submission body dto.SubmitSectionRequest true "Seconds spent on the section"
// @Success 200 {object} dto.SubmitSectionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Section not in attempt or negative time"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Section already submitted or attempt completed"
// @Router /test-attempts/{id}/sections/{section}/submit [post]
func (c *TestAttemptController) SubmitSection(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SubmitSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	section := ctx.Param("section")
	resp, err := c.attemptService.SubmitSection(ctx.Request.Context(), middleware.OwnerID(ctx), id, section, req.TimeSpentSeconds)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	c.sessions.Stop(id, section)
	log.Info().Str("attemptID", id.String()).Str("section", section).Bool("completed", resp.AttemptCompleted).Msg("User SubmitSection: accepted")
	ctx.JSON(http.StatusOK, resp)
}

// GetAdvice godoc
// @Summary (User) AI study advice for a completed attempt
// @Tags User - Test Attempts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Success 200 {object} dto.StudyAdviceDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt not completed"
// @Failure 503 {object} dto.ErrorResponse "Advice service unavailable"
// @Router /test-attempts/{id}/advice [get]
func (c *TestAttemptController) GetAdvice(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	advice, err := c.advisor.Advise(ctx.Request.Context(), middleware.OwnerID(ctx), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, advice)
}
