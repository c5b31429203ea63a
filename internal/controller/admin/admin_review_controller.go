package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/nihongo-test/internal/controller"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"github.com/lshigami/nihongo-test/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminReviewController struct {
	attemptService service.AttemptService
	exam           *scoring.Config
}

func NewAdminReviewController(as service.AttemptService, exam *scoring.Config) *AdminReviewController {
	return &AdminReviewController{attemptService: as, exam: exam}
}

// ReviewAttempt godoc
// @Summary (Admin) Review any test attempt
// @Description Reads an attempt regardless of owner, including its snapshot, answers and scores.
// @Tags Admin - Review
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Success 200 {object} dto.TestAttemptDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /admin/test-attempts/{id} [get]
func (c *AdminReviewController) ReviewAttempt(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	log.Info().Str("attemptID", id.String()).Msg("Admin ReviewAttempt")
	attempt, err := c.attemptService.GetForReview(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// GetExamConfig godoc
// @Summary (Admin) Show the active scoring table
// @Tags Admin - Review
// @Produce json
// @Security BearerAuth
// @Success 200 {object} scoring.Config
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/exam-config [get]
func (c *AdminReviewController) GetExamConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.exam)
}
