package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/nihongo-test/internal/dto"
	"github.com/lshigami/nihongo-test/internal/model"
	"github.com/lshigami/nihongo-test/internal/repository"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"github.com/lshigami/nihongo-test/internal/snapshot"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type AttemptService interface {
	Create(ctx context.Context, ownerID string, req dto.CreateAttemptRequest) (*dto.AttemptCreatedDTO, error)
	RecordAnswer(ctx context.Context, ownerID string, attemptID uuid.UUID, questionID uint, selected *int) (*dto.UserAnswerDTO, error)
	SubmitSection(ctx context.Context, ownerID string, attemptID uuid.UUID, section string, timeSpentSeconds int) (*dto.SubmitSectionResponseDTO, error)
	TryComplete(ctx context.Context, attemptID uuid.UUID) (bool, error)
	Get(ctx context.Context, ownerID string, attemptID uuid.UUID) (*dto.TestAttemptDetailDTO, error)
	GetForReview(ctx context.Context, attemptID uuid.UUID) (*dto.TestAttemptDetailDTO, error)
	ListByOwner(ctx context.Context, ownerID string) ([]dto.TestAttemptSummaryDTO, error)
}

type attemptService struct {
	repo    repository.TestAttemptRepository
	builder *snapshot.Builder
	cfg     *scoring.Config
	now     func() time.Time
}

func NewAttemptService(
	repo repository.TestAttemptRepository,
	builder *snapshot.Builder,
	cfg *scoring.Config,
) AttemptService {
	return &attemptService{
		repo:    repo,
		builder: builder,
		cfg:     cfg,
		now:     time.Now,
	}
}

// sectionsForMode resolves which sections an attempt must cover.
func (s *attemptService) sectionsForMode(lvl *scoring.LevelConfig, mode model.AttemptMode, practice *string) ([]string, error) {
	switch mode {
	case model.ModeFull:
		return lvl.SectionTypes(), nil
	case model.ModeSection:
		if practice == nil || *practice == "" {
			return nil, fmt.Errorf("%w: section mode needs practice_section", ErrInvalidMode)
		}
		if _, err := lvl.Section(*practice); err != nil {
			return nil, err
		}
		return []string{*practice}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

func (s *attemptService) Create(ctx context.Context, ownerID string, req dto.CreateAttemptRequest) (*dto.AttemptCreatedDTO, error) {
	lvl, err := s.cfg.Level(req.Level)
	if err != nil {
		return nil, err
	}
	mode := model.AttemptMode(req.Mode)
	sections, err := s.sectionsForMode(lvl, mode, req.PracticeSection)
	if err != nil {
		return nil, err
	}

	snap, err := s.builder.Build(ctx, lvl, sections)
	if err != nil {
		log.Warn().Err(err).Str("level", req.Level).Str("ownerID", ownerID).Msg("Could not build question snapshot")
		return nil, err
	}

	attempt := model.TestAttempt{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Level:          lvl.Level,
		Mode:           mode,
		Status:         model.AttemptInProgress,
		Snapshot:       datatypes.NewJSONType(snap),
		ScoringVersion: s.cfg.Version,
		StartedAt:      s.now(),
		FailureReasons: datatypes.NewJSONType([]scoring.FailureReason{}),
	}
	if mode == model.ModeSection {
		attempt.PracticeSection = req.PracticeSection
	}
	if err := s.repo.Create(ctx, &attempt); err != nil {
		log.Error().Err(err).Str("ownerID", ownerID).Msg("Failed to create test attempt in DB")
		return nil, err
	}
	log.Info().Str("attemptID", attempt.ID.String()).Str("level", attempt.Level).Str("mode", string(mode)).Msg("Test attempt started")

	resp := &dto.AttemptCreatedDTO{
		ID:             attempt.ID,
		Level:          attempt.Level,
		Mode:           attempt.Mode,
		Status:         attempt.Status,
		ScoringVersion: attempt.ScoringVersion,
		StartedAt:      attempt.StartedAt,
	}
	for _, sec := range snap.Sections {
		resp.Sections = append(resp.Sections, dto.SectionSummaryDTO{
			SectionType:     sec.SectionType,
			QuestionCount:   sec.QuestionCount(),
			DurationSeconds: s.durationSeconds(attempt.Level, sec.SectionType),
		})
	}
	return resp, nil
}

func (s *attemptService) durationSeconds(level, section string) int {
	sec, err := s.cfg.Section(level, section)
	if err != nil {
		return 0
	}
	return sec.DurationMinutes * 60
}

// load fetches an attempt and enforces ownership.
func (s *attemptService) load(ctx context.Context, ownerID string, attemptID uuid.UUID) (*model.TestAttempt, error) {
	attempt, err := s.repo.FindByID(ctx, attemptID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("Failed to load test attempt")
		return nil, err
	}
	if attempt.OwnerID != ownerID {
		log.Warn().Str("attemptID", attemptID.String()).Str("requester", ownerID).Msg("Attempt accessed by non-owner")
		return nil, ErrForbidden
	}
	return attempt, nil
}

func isSubmitted(attempt *model.TestAttempt, section string) bool {
	for _, sub := range attempt.Submissions {
		if sub.SectionType == section {
			return true
		}
	}
	return false
}

func (s *attemptService) RecordAnswer(ctx context.Context, ownerID string, attemptID uuid.UUID, questionID uint, selected *int) (*dto.UserAnswerDTO, error) {
	if selected != nil && *selected < 0 {
		return nil, ErrInvalidAnswer
	}
	attempt, err := s.load(ctx, ownerID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.IsCompleted() {
		return nil, ErrAttemptClosed
	}
	section, ok := attempt.Snapshot.Data().SectionOf(questionID)
	if !ok {
		return nil, ErrQuestionNotInAttempt
	}
	if isSubmitted(attempt, section) {
		return nil, ErrSectionLocked
	}

	answer := model.UserAnswer{
		TestAttemptID:  attemptID,
		QuestionID:     questionID,
		SectionType:    section,
		SelectedAnswer: selected,
		AnsweredAt:     s.now(),
	}
	written, err := s.repo.UpsertAnswer(ctx, &answer)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Uint("questionID", questionID).Msg("Failed to save answer")
		return nil, err
	}
	if !written {
		// A submit or completion won the race after the checks above.
		return nil, s.classifyRejectedWrite(ctx, attemptID)
	}

	var resp dto.UserAnswerDTO
	if err := copier.Copy(&resp, &answer); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *attemptService) classifyRejectedWrite(ctx context.Context, attemptID uuid.UUID) error {
	current, err := s.repo.FindByID(ctx, attemptID)
	if err != nil {
		return err
	}
	if current.IsCompleted() {
		return ErrAttemptClosed
	}
	return ErrSectionLocked
}

func (s *attemptService) SubmitSection(ctx context.Context, ownerID string, attemptID uuid.UUID, section string, timeSpentSeconds int) (*dto.SubmitSectionResponseDTO, error) {
	if timeSpentSeconds < 0 {
		return nil, ErrInvalidTimeSpent
	}
	attempt, err := s.load(ctx, ownerID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.IsCompleted() {
		return nil, ErrAttemptClosed
	}
	if _, ok := attempt.Snapshot.Data().Section(section); !ok {
		return nil, ErrSectionNotInAttempt
	}

	sub := model.SectionSubmission{
		TestAttemptID:    attemptID,
		SectionType:      section,
		SubmittedAt:      s.now(),
		TimeSpentSeconds: timeSpentSeconds,
	}
	inserted, err := s.repo.CreateSubmission(ctx, &sub)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Str("section", section).Msg("Failed to save section submission")
		return nil, err
	}
	if !inserted {
		log.Debug().Str("attemptID", attemptID.String()).Str("section", section).Msg("Section already submitted")
		return nil, ErrAlreadySubmitted
	}
	log.Info().Str("attemptID", attemptID.String()).Str("section", section).Int("timeSpentSeconds", timeSpentSeconds).Msg("Section submitted")

	resp := &dto.SubmitSectionResponseDTO{}
	if err := copier.Copy(&resp.Submission, &sub); err != nil {
		return nil, err
	}
	completed, err := s.TryComplete(ctx, attemptID)
	if err != nil {
		// The submission stands; completion is retried on the next read.
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("Completion after submit failed")
		return resp, nil
	}
	resp.AttemptCompleted = completed
	return resp, nil
}

func (s *attemptService) TryComplete(ctx context.Context, attemptID uuid.UUID) (bool, error) {
	completed, err := s.repo.Complete(ctx, attemptID, s.complete)
	if err != nil {
		return false, err
	}
	if completed {
		log.Info().Str("attemptID", attemptID.String()).Msg("Test attempt completed")
	}
	return completed, nil
}

// complete runs under the attempt's row lock. A nil Completion leaves the
// attempt in progress.
func (s *attemptService) complete(attempt *model.TestAttempt, submissions []model.SectionSubmission, answers []model.UserAnswer) (*repository.Completion, error) {
	submitted := make(map[string]bool, len(submissions))
	for _, sub := range submissions {
		submitted[sub.SectionType] = true
	}
	for _, section := range attempt.RequiredSections() {
		if !submitted[section] {
			return nil, nil
		}
	}

	if attempt.ScoringVersion != s.cfg.Version {
		log.Warn().Str("attemptID", attempt.ID.String()).
			Str("attemptVersion", attempt.ScoringVersion).
			Str("configVersion", s.cfg.Version).
			Msg("Scoring attempt with a newer exam config")
	}

	result, err := scoring.Evaluate(s.cfg, attempt.Level, SectionInputs(attempt.Snapshot.Data(), answers))
	if err != nil {
		return nil, fmt.Errorf("score attempt %s: %w", attempt.ID, err)
	}
	return &repository.Completion{
		TotalScore:     result.TotalScore,
		IsPassed:       result.Verdict.IsPassed,
		FailureReasons: result.Verdict.FailureReasons,
		CompletedAt:    s.now(),
		Scores:         model.NewSectionScores(attempt.ID, model.ResultKindAttempt, result.Sections),
	}, nil
}

// SectionInputs counts correct answers per subsection against the answers
// frozen in the snapshot. Blank and missing answers count as wrong.
func SectionInputs(snap model.QuestionSnapshot, answers []model.UserAnswer) []scoring.SectionInput {
	selected := make(map[uint]*int, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedAnswer
	}
	inputs := make([]scoring.SectionInput, 0, len(snap.Sections))
	for _, sec := range snap.Sections {
		in := scoring.SectionInput{SectionType: sec.SectionType}
		for _, m := range sec.Mondai {
			mi := scoring.MondaiInput{Number: m.Number, Total: len(m.Questions)}
			for _, q := range m.Questions {
				if choice := selected[q.QuestionID]; choice != nil && *choice == q.CorrectAnswer {
					mi.Correct++
				}
			}
			in.Mondai = append(in.Mondai, mi)
		}
		inputs = append(inputs, in)
	}
	return inputs
}

func (s *attemptService) Get(ctx context.Context, ownerID string, attemptID uuid.UUID) (*dto.TestAttemptDetailDTO, error) {
	attempt, err := s.load(ctx, ownerID, attemptID)
	if err != nil {
		return nil, err
	}
	attempt, err = s.settle(ctx, attempt)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, attempt)
}

func (s *attemptService) GetForReview(ctx context.Context, attemptID uuid.UUID) (*dto.TestAttemptDetailDTO, error) {
	attempt, err := s.repo.FindByID(ctx, attemptID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	attempt, err = s.settle(ctx, attempt)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, attempt)
}

// settle finishes an attempt whose sections are all submitted but whose
// completion did not go through earlier.
func (s *attemptService) settle(ctx context.Context, attempt *model.TestAttempt) (*model.TestAttempt, error) {
	if attempt.IsCompleted() || len(attempt.Submissions) < len(attempt.RequiredSections()) {
		return attempt, nil
	}
	completed, err := s.TryComplete(ctx, attempt.ID)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attempt.ID.String()).Msg("Deferred completion failed")
		return attempt, nil
	}
	if !completed {
		return attempt, nil
	}
	return s.repo.FindByID(ctx, attempt.ID)
}

func (s *attemptService) detail(ctx context.Context, attempt *model.TestAttempt) (*dto.TestAttemptDetailDTO, error) {
	answers, err := s.repo.FindAnswers(ctx, attempt.ID)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attempt.ID.String()).Msg("Failed to load answers")
		return nil, err
	}

	resp := &dto.TestAttemptDetailDTO{
		ID:              attempt.ID,
		OwnerID:         attempt.OwnerID,
		Level:           attempt.Level,
		Mode:            attempt.Mode,
		PracticeSection: attempt.PracticeSection,
		Status:          attempt.Status,
		ScoringVersion:  attempt.ScoringVersion,
		StartedAt:       attempt.StartedAt,
		CompletedAt:     attempt.CompletedAt,
		Submissions:     []dto.SectionSubmissionDTO{},
		Answers:         []dto.UserAnswerDTO{},
	}
	if err := copier.Copy(&resp.Submissions, &attempt.Submissions); err != nil {
		return nil, err
	}
	if err := copier.Copy(&resp.Answers, &answers); err != nil {
		return nil, err
	}

	revealed := attempt.IsCompleted()
	for _, sec := range attempt.Snapshot.Data().Sections {
		sd := dto.SnapshotSectionDTO{
			SectionType:     sec.SectionType,
			QuestionCount:   sec.QuestionCount(),
			DurationSeconds: s.durationSeconds(attempt.Level, sec.SectionType),
			Locked:          isSubmitted(attempt, sec.SectionType),
		}
		for _, m := range sec.Mondai {
			md := dto.SnapshotMondaiDTO{Number: m.Number}
			for _, q := range m.Questions {
				qd := dto.SnapshotQuestionDTO{QuestionID: q.QuestionID}
				if revealed {
					correct := q.CorrectAnswer
					qd.CorrectAnswer = &correct
				}
				md.Questions = append(md.Questions, qd)
			}
			sd.Mondai = append(sd.Mondai, md)
		}
		resp.Sections = append(resp.Sections, sd)
	}

	if revealed {
		resp.TotalScore = attempt.TotalScore
		resp.IsPassed = attempt.IsPassed
		resp.FailureReasons = attempt.FailureReasons.Data()
		for _, sc := range attempt.SectionScores {
			resp.SectionScores = append(resp.SectionScores, sc.ToScoring())
		}
	}
	return resp, nil
}

func (s *attemptService) ListByOwner(ctx context.Context, ownerID string) ([]dto.TestAttemptSummaryDTO, error) {
	attempts, err := s.repo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		log.Error().Err(err).Str("ownerID", ownerID).Msg("Failed to list test attempts")
		return nil, err
	}
	resp := []dto.TestAttemptSummaryDTO{}
	if err := copier.Copy(&resp, &attempts); err != nil {
		return nil, err
	}
	return resp, nil
}
