package controller

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lshigami/nihongo-test/internal/scoring"
	"github.com/lshigami/nihongo-test/internal/service"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrForbidden, http.StatusNotFound},
		{service.ErrAttemptClosed, http.StatusConflict},
		{service.ErrSectionLocked, http.StatusConflict},
		{fmt.Errorf("submit: %w", service.ErrAlreadySubmitted), http.StatusConflict},
		{service.ErrAttemptNotCompleted, http.StatusConflict},
		{fmt.Errorf("vocabulary/1: %w", service.ErrInsufficientQuestions), http.StatusUnprocessableEntity},
		{service.ErrInvalidSectionConfig, http.StatusUnprocessableEntity},
		{service.ValidationErrors{{Index: 0, Field: "total", Message: "must be greater than zero"}}, http.StatusBadRequest},
		{service.ErrQuestionNotInAttempt, http.StatusBadRequest},
		{service.ErrInvalidTimeSpent, http.StatusBadRequest},
		{fmt.Errorf("%w: N9", scoring.ErrUnknownLevel), http.StatusBadRequest},
		{scoring.ErrNoSections, http.StatusBadRequest},
		{service.ErrAdvisorUnavailable, http.StatusServiceUnavailable},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			if got := StatusFor(tc.err); got != tc.want {
				t.Fatalf("StatusFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
