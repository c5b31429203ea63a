package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/dto"
	"github.com/lshigami/nihongo-test/internal/model"
	"github.com/lshigami/nihongo-test/internal/repository"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type OfflineResultService interface {
	Record(ctx context.Context, ownerID string, req dto.OfflineResultRequest) (*dto.OfflineResultDTO, error)
	Get(ctx context.Context, ownerID string, id uuid.UUID) (*dto.OfflineResultDTO, error)
	ListByOwner(ctx context.Context, ownerID string) ([]dto.OfflineResultDTO, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}

type offlineResultService struct {
	repo repository.OfflineResultRepository
	cfg  *scoring.Config
	now  func() time.Time
}

func NewOfflineResultService(repo repository.OfflineResultRepository, cfg *scoring.Config) OfflineResultService {
	return &offlineResultService{repo: repo, cfg: cfg, now: time.Now}
}

func (s *offlineResultService) Record(ctx context.Context, ownerID string, req dto.OfflineResultRequest) (*dto.OfflineResultDTO, error) {
	inputs, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	result, err := scoring.Evaluate(s.cfg, req.Level, inputs)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	row := model.OfflineTestResult{
		ID:             id,
		OwnerID:        ownerID,
		Level:          result.Level,
		Mode:           model.AttemptMode(req.Mode),
		Source:         req.Source,
		Note:           req.Note,
		TakenOn:        req.TakenOn,
		ScoringVersion: result.ConfigVersion,
		TotalScore:     result.TotalScore,
		IsPassed:       result.Verdict.IsPassed,
		FailureReasons: datatypes.NewJSONType(result.Verdict.FailureReasons),
		SectionScores:  model.NewSectionScores(id, model.ResultKindOffline, result.Sections),
		CreatedAt:      s.now(),
	}
	if row.Mode == model.ModeSection {
		row.PracticeSection = req.PracticeSection
	}
	if err := s.repo.Create(ctx, &row); err != nil {
		log.Error().Err(err).Str("ownerID", ownerID).Msg("Failed to save offline result")
		return nil, err
	}
	log.Info().Str("resultID", id.String()).Str("level", row.Level).Int("totalScore", row.TotalScore).Bool("isPassed", row.IsPassed).Msg("Offline result recorded")
	return toOfflineDTO(&row), nil
}

type mondaiKey struct {
	section string
	number  int
}

// validate reports every problem in the request at once and, when there
// are none, returns the scoring inputs in configured order.
func (s *offlineResultService) validate(req dto.OfflineResultRequest) ([]scoring.SectionInput, error) {
	var errs ValidationErrors

	lvl, err := s.cfg.Level(req.Level)
	if err != nil {
		return nil, ValidationErrors{{Index: -1, Field: "level", Message: fmt.Sprintf("unknown level %q", req.Level)}}
	}

	required := map[string]bool{}
	switch model.AttemptMode(req.Mode) {
	case model.ModeFull:
		for _, t := range lvl.SectionTypes() {
			required[t] = true
		}
	case model.ModeSection:
		switch {
		case req.PracticeSection == nil || *req.PracticeSection == "":
			errs = append(errs, ValidationError{Index: -1, Field: "practice_section", Message: "required when mode is section"})
		default:
			if _, err := lvl.Section(*req.PracticeSection); err != nil {
				errs = append(errs, ValidationError{Index: -1, Field: "practice_section", Message: fmt.Sprintf("unknown section %q for level %s", *req.PracticeSection, lvl.Level)})
			} else {
				required[*req.PracticeSection] = true
			}
		}
	default:
		errs = append(errs, ValidationError{Index: -1, Field: "mode", Message: fmt.Sprintf("unknown mode %q", req.Mode)})
	}

	seen := map[mondaiKey]scoring.MondaiInput{}
	for i, e := range req.Entries {
		sec, err := lvl.Section(e.SectionType)
		if err != nil {
			errs = append(errs, ValidationError{Index: i, Field: "section_type", Message: fmt.Sprintf("unknown section %q for level %s", e.SectionType, lvl.Level)})
			continue
		}
		if len(required) > 0 && !required[e.SectionType] {
			errs = append(errs, ValidationError{Index: i, Field: "section_type", Message: fmt.Sprintf("section %s is not part of this result", e.SectionType)})
			continue
		}
		if _, ok := sec.FindMondai(e.Subsection); !ok {
			errs = append(errs, ValidationError{Index: i, Field: "subsection", Message: fmt.Sprintf("unknown subsection %d in section %s", e.Subsection, e.SectionType)})
			continue
		}
		key := mondaiKey{e.SectionType, e.Subsection}
		if _, dup := seen[key]; dup {
			errs = append(errs, ValidationError{Index: i, Field: "subsection", Message: fmt.Sprintf("subsection %d in section %s given more than once", e.Subsection, e.SectionType)})
			continue
		}
		valid := true
		if e.Total <= 0 {
			errs = append(errs, ValidationError{Index: i, Field: "total", Message: "must be greater than zero"})
			valid = false
		}
		if e.Correct < 0 {
			errs = append(errs, ValidationError{Index: i, Field: "correct", Message: "must not be negative"})
			valid = false
		}
		if e.Total > 0 && e.Correct > e.Total {
			errs = append(errs, ValidationError{Index: i, Field: "correct", Message: fmt.Sprintf("%d exceeds total %d", e.Correct, e.Total)})
			valid = false
		}
		if valid {
			seen[key] = scoring.MondaiInput{Number: e.Subsection, Correct: e.Correct, Total: e.Total}
		} else {
			seen[key] = scoring.MondaiInput{}
		}
	}

	var inputs []scoring.SectionInput
	for _, sec := range lvl.Sections {
		if !required[sec.Type] {
			continue
		}
		in := scoring.SectionInput{SectionType: sec.Type}
		for _, mc := range sec.Mondai {
			m, ok := seen[mondaiKey{sec.Type, mc.Number}]
			if !ok {
				errs = append(errs, ValidationError{Index: -1, Field: "entries", Message: fmt.Sprintf("missing subsection %d of section %s", mc.Number, sec.Type)})
				continue
			}
			in.Mondai = append(in.Mondai, m)
		}
		inputs = append(inputs, in)
	}

	if len(errs) > 0 {
		log.Debug().Int("problems", len(errs)).Str("level", lvl.Level).Msg("Offline result rejected")
		return nil, errs
	}
	return inputs, nil
}

func (s *offlineResultService) load(ctx context.Context, ownerID string, id uuid.UUID) (*model.OfflineTestResult, error) {
	row, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("resultID", id.String()).Msg("Failed to load offline result")
		return nil, err
	}
	if row.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return row, nil
}

func (s *offlineResultService) Get(ctx context.Context, ownerID string, id uuid.UUID) (*dto.OfflineResultDTO, error) {
	row, err := s.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return toOfflineDTO(row), nil
}

func (s *offlineResultService) ListByOwner(ctx context.Context, ownerID string) ([]dto.OfflineResultDTO, error) {
	rows, err := s.repo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		log.Error().Err(err).Str("ownerID", ownerID).Msg("Failed to list offline results")
		return nil, err
	}
	resp := make([]dto.OfflineResultDTO, 0, len(rows))
	for i := range rows {
		resp = append(resp, *toOfflineDTO(&rows[i]))
	}
	return resp, nil
}

func (s *offlineResultService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if _, err := s.load(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Str("resultID", id.String()).Msg("Failed to delete offline result")
		return err
	}
	log.Info().Str("resultID", id.String()).Msg("Offline result deleted")
	return nil
}

func toOfflineDTO(row *model.OfflineTestResult) *dto.OfflineResultDTO {
	out := &dto.OfflineResultDTO{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Level:           row.Level,
		Mode:            row.Mode,
		PracticeSection: row.PracticeSection,
		Source:          row.Source,
		Note:            row.Note,
		TakenOn:         row.TakenOn,
		ScoringVersion:  row.ScoringVersion,
		TotalScore:      row.TotalScore,
		IsPassed:        row.IsPassed,
		FailureReasons:  row.FailureReasons.Data(),
		SectionScores:   make([]scoring.SectionScore, 0, len(row.SectionScores)),
		CreatedAt:       row.CreatedAt,
	}
	for _, sc := range row.SectionScores {
		out.SectionScores = append(out.SectionScores, sc.ToScoring())
	}
	return out
}
