package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/nihongo-test/internal/controller"
	"github.com/lshigami/nihongo-test/internal/dto"
	"github.com/lshigami/nihongo-test/internal/middleware"
	"github.com/lshigami/nihongo-test/internal/service"
)

type OfflineResultController struct {
	offlineService service.OfflineResultService
}

func NewOfflineResultController(ors service.OfflineResultService) *OfflineResultController {
	return &OfflineResultController{offlineService: ors}
}

// RecordResult godoc
// @Summary (User) Record a paper-test result
// @Description Scores self-reported correct/total counts with the same rules as online attempts. Every invalid entry is reported at once.
// @Tags User - Offline Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param result body dto.OfflineResultRequest true "Level, mode and per-subsection counts"
// @Success 201 {object} dto.OfflineResultDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failed; details list every problem"
// @Router /offline-results [post]
func (c *OfflineResultController) RecordResult(ctx *gin.Context) {
	var req dto.OfflineResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	result, err := c.offlineService.Record(ctx.Request.Context(), middleware.OwnerID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// ListResults godoc
// @Summary (User) List my offline results
// @Tags User - Offline Results
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.OfflineResultDTO
// @Router /offline-results [get]
func (c *OfflineResultController) ListResults(ctx *gin.Context) {
	results, err := c.offlineService.ListByOwner(ctx.Request.Context(), middleware.OwnerID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetResult godoc
// @Summary (User) Get one offline result
// @Tags User - Offline Results
// @Produce json
// @Security BearerAuth
// @Param id path string true "Result ID (uuid)"
// @Success 200 {object} dto.OfflineResultDTO
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /offline-results/{id} [get]
func (c *OfflineResultController) GetResult(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	result, err := c.offlineService.Get(ctx.Request.Context(), middleware.OwnerID(ctx), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteResult godoc
// @Summary (User) Delete an offline result
// @Tags User - Offline Results
// @Security BearerAuth
// @Param id path string true "Result ID (uuid)"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /offline-results/{id} [delete]
func (c *OfflineResultController) DeleteResult(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.offlineService.Delete(ctx.Request.Context(), middleware.OwnerID(ctx), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
