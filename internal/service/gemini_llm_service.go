package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/config"
	"github.com/lshigami/nihongo-test/internal/dto"
	"github.com/lshigami/nihongo-test/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var ErrAdvisorUnavailable = errors.New("study advice is not available")

// StudyAdvisor turns a completed attempt's section breakdown into a short
// study plan written by Gemini.
type StudyAdvisor interface {
	Advise(ctx context.Context, ownerID string, attemptID uuid.UUID) (*dto.StudyAdviceDTO, error)
}

// contentGenerator is the part of *genai.GenerativeModel the advisor uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiStudyAdvisor struct {
	attempts AttemptService
	model    contentGenerator
}

func NewGeminiStudyAdvisor(cfg *config.Config, attempts AttemptService) (StudyAdvisor, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Study advice will be unavailable.")
		return &geminiStudyAdvisor{attempts: attempts}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiStudyAdvisor{attempts: attempts, model: client.GenerativeModel("gemini-1.5-flash")}, nil
}

func (a *geminiStudyAdvisor) Advise(ctx context.Context, ownerID string, attemptID uuid.UUID) (*dto.StudyAdviceDTO, error) {
	detail, err := a.attempts.Get(ctx, ownerID, attemptID)
	if err != nil {
		return nil, err
	}
	if detail.Status != model.AttemptCompleted {
		return nil, ErrAttemptNotCompleted
	}
	if a.model == nil {
		return nil, ErrAdvisorUnavailable
	}

	resp, err := a.model.GenerateContent(ctx, genai.Text(advicePrompt(detail)))
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("Gemini content generation failed")
		return nil, fmt.Errorf("%w: %v", ErrAdvisorUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Str("attemptID", attemptID.String()).Msg("Gemini returned an empty response")
		return nil, ErrAdvisorUnavailable
	}

	var advice strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			advice.WriteString(string(txt))
		}
	}
	return &dto.StudyAdviceDTO{AttemptID: attemptID, Advice: strings.TrimSpace(advice.String())}, nil
}

func advicePrompt(detail *dto.TestAttemptDetailDTO) string {
	var b strings.Builder
	b.WriteString("You are an experienced Japanese Language Proficiency Test (JLPT) tutor.\n")
	fmt.Fprintf(&b, "A learner just finished a %s practice test (%s mode).\n", detail.Level, detail.Mode)
	if detail.IsPassed != nil && detail.TotalScore != nil {
		fmt.Fprintf(&b, "Total scaled score: %d. Passed: %t.\n", *detail.TotalScore, *detail.IsPassed)
	}
	b.WriteString("\nSection results (scaled score / maximum, pass mark, reference grade):\n")
	for _, sec := range detail.SectionScores {
		fmt.Fprintf(&b, "- %s: %d/%d, pass mark %d, grade %s\n",
			sec.SectionType, sec.NormalizedScore, sec.ScaleMax, sec.PassMark, sec.ReferenceGrade)
		for _, m := range sec.Mondai {
			fmt.Fprintf(&b, "    mondai %d: %d of %d correct\n", m.Number, m.Correct, m.Total)
		}
	}
	if len(detail.FailureReasons) > 0 {
		b.WriteString("\nReasons the test was not passed:\n")
		for _, r := range detail.FailureReasons {
			fmt.Fprintf(&b, "- %s\n", r.String())
		}
	}
	b.WriteString(`
Write a concise study plan (at most 200 words) for the next two weeks.
Focus first on sections below their pass mark, then on the weakest mondai.
Use short bullet points and suggest concrete practice activities.`)
	return b.String()
}
