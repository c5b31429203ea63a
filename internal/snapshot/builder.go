// Package snapshot freezes the ordered question set for a new attempt.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/nihongo-test/internal/model"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrInsufficientQuestions = errors.New("insufficient questions in pool")

// QuestionPool is the read-only view of the question bank: active questions
// for one (level, section, mondai), in bank order.
type QuestionPool interface {
	FetchPool(ctx context.Context, level, section string, mondai int) ([]model.SnapshotQuestion, error)
}

type Builder struct {
	pool   QuestionPool
	policy SelectionPolicy
}

func NewBuilder(pool QuestionPool, policy SelectionPolicy) *Builder {
	if policy == nil {
		policy = OrderedPolicy{}
	}
	return &Builder{pool: pool, policy: policy}
}

type slot struct {
	section string
	mondai  scoring.MondaiConfig
	pool    []model.SnapshotQuestion
}

// Build selects the configured number of questions for every subsection of
// the requested sections. It returns either a complete snapshot or an error;
// never a partial one.
func (b *Builder) Build(ctx context.Context, level *scoring.LevelConfig, sections []string) (model.QuestionSnapshot, error) {
	var slots []*slot
	for _, sectionType := range sections {
		sec, err := level.Section(sectionType)
		if err != nil {
			return model.QuestionSnapshot{}, err
		}
		for _, m := range sec.Mondai {
			slots = append(slots, &slot{section: sec.Type, mondai: m})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range slots {
		g.Go(func() error {
			pool, err := b.pool.FetchPool(gctx, level.Level, s.section, s.mondai.Number)
			if err != nil {
				return fmt.Errorf("fetch pool %s/%s/%d: %w", level.Level, s.section, s.mondai.Number, err)
			}
			s.pool = pool
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.QuestionSnapshot{}, err
	}

	used := make(map[uint]bool)
	var snap model.QuestionSnapshot
	for _, s := range slots {
		if len(snap.Sections) == 0 || snap.Sections[len(snap.Sections)-1].SectionType != s.section {
			snap.Sections = append(snap.Sections, model.SnapshotSection{SectionType: s.section})
		}
		picked := make([]model.SnapshotQuestion, 0, s.mondai.Questions)
		for _, q := range b.policy.Order(s.pool) {
			if len(picked) == s.mondai.Questions {
				break
			}
			if used[q.QuestionID] {
				continue
			}
			used[q.QuestionID] = true
			picked = append(picked, q)
		}
		if len(picked) < s.mondai.Questions {
			log.Warn().Str("level", level.Level).Str("section", s.section).Int("mondai", s.mondai.Number).
				Int("have", len(picked)).Int("want", s.mondai.Questions).Msg("Snapshot: pool too small")
			return model.QuestionSnapshot{}, fmt.Errorf("%w: level %s section %s mondai %d has %d usable questions, needs %d",
				ErrInsufficientQuestions, level.Level, s.section, s.mondai.Number, len(picked), s.mondai.Questions)
		}
		cur := &snap.Sections[len(snap.Sections)-1]
		cur.Mondai = append(cur.Mondai, model.SnapshotMondai{Number: s.mondai.Number, Questions: picked})
	}
	return snap, nil
}
