package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/dto"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"github.com/lshigami/nihongo-test/internal/service"
	"github.com/rs/zerolog/log"
)

// NotFoundMessage is returned for both missing and foreign resources.
const NotFoundMessage = "resource not found"

// StatusFor maps a service error onto an HTTP status.
func StatusFor(err error) int {
	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrForbidden):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAttemptClosed),
		errors.Is(err, service.ErrSectionLocked),
		errors.Is(err, service.ErrAlreadySubmitted),
		errors.Is(err, service.ErrAttemptNotCompleted):
		return http.StatusConflict
	case errors.Is(err, service.ErrInsufficientQuestions),
		errors.Is(err, service.ErrInvalidSectionConfig):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrQuestionNotInAttempt),
		errors.Is(err, service.ErrSectionNotInAttempt),
		errors.Is(err, service.ErrInvalidTimeSpent),
		errors.Is(err, service.ErrInvalidAnswer),
		errors.Is(err, service.ErrInvalidMode),
		errors.Is(err, scoring.ErrUnknownLevel),
		errors.Is(err, scoring.ErrUnknownSection),
		errors.Is(err, scoring.ErrUnknownSubsection),
		errors.Is(err, scoring.ErrDuplicateInput),
		errors.Is(err, scoring.ErrInvalidCounts),
		errors.Is(err, scoring.ErrNoSections):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAdvisorUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as an ErrorResponse.
func RespondError(ctx *gin.Context, err error) {
	status := StatusFor(err)
	resp := dto.ErrorResponse{Message: err.Error()}

	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		resp = dto.ErrorResponse{Message: "validation failed", Details: verrs.Messages()}
	case status == http.StatusNotFound:
		resp.Message = NotFoundMessage
	case status == http.StatusInternalServerError:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		resp.Message = "internal server error"
	}
	ctx.JSON(status, resp)
}

// ParseUUIDParam reads a uuid path parameter, answering 404 when it is
// malformed.
func ParseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: NotFoundMessage})
		return uuid.Nil, false
	}
	return id, true
}

// BindError answers a request body that failed binding.
func BindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}
