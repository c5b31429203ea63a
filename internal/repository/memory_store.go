package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/model"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"gorm.io/datatypes"
)

// MemoryStore keeps everything in process. Its mutex stands in for the
// database's statement atomicity and unique indexes, so it honours the same
// conditional-write contracts as the gorm repositories. Used by tests and by
// DATABASE_DRIVER=memory.
type MemoryStore struct {
	mu          sync.Mutex
	attempts    map[uuid.UUID]model.TestAttempt
	submissions map[uuid.UUID]map[string]model.SectionSubmission
	answers     map[uuid.UUID]map[uint]model.UserAnswer
	scores      map[uuid.UUID][]model.SectionScore
	offline     map[uuid.UUID]model.OfflineTestResult
	questions   []model.Question
	nextID      uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attempts:    make(map[uuid.UUID]model.TestAttempt),
		submissions: make(map[uuid.UUID]map[string]model.SectionSubmission),
		answers:     make(map[uuid.UUID]map[uint]model.UserAnswer),
		scores:      make(map[uuid.UUID][]model.SectionScore),
		offline:     make(map[uuid.UUID]model.OfflineTestResult),
	}
}

func (m *MemoryStore) id() uint {
	m.nextID++
	return m.nextID
}

// AddQuestions seeds the bank. Questions without an ID get one.
func (m *MemoryStore) AddQuestions(qs ...model.Question) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range qs {
		if q.ID == 0 {
			q.ID = m.id()
		} else if q.ID > m.nextID {
			m.nextID = q.ID
		}
		m.questions = append(m.questions, q)
	}
}

// SeedBank fills the bank with placeholder questions, copies times the number
// each subsection of the exam table needs. Used by DATABASE_DRIVER=memory.
func (m *MemoryStore) SeedBank(exam *scoring.Config, copies int) {
	var qs []model.Question
	for _, lvl := range exam.Levels {
		for _, sec := range lvl.Sections {
			for _, mc := range sec.Mondai {
				for i := 0; i < mc.Questions*copies; i++ {
					qs = append(qs, model.Question{
						Level:         lvl.Level,
						SectionType:   sec.Type,
						MondaiNumber:  mc.Number,
						OrderInMondai: i,
						Prompt:        fmt.Sprintf("%s %s mondai %d question %d", lvl.Level, sec.Type, mc.Number, i+1),
						CorrectAnswer: i % 4,
						Active:        true,
					})
				}
			}
		}
	}
	m.AddQuestions(qs...)
}

// UpdateQuestion replaces a bank row in place; DeleteQuestion removes it.
func (m *MemoryStore) UpdateQuestion(q model.Question) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.questions {
		if m.questions[i].ID == q.ID {
			m.questions[i] = q
		}
	}
}

func (m *MemoryStore) DeleteQuestion(id uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.questions[:0]
	for _, q := range m.questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	m.questions = kept
}

func (m *MemoryStore) FetchPool(_ context.Context, level, section string, mondai int) ([]model.SnapshotQuestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []model.Question
	for _, q := range m.questions {
		if q.Level == level && q.SectionType == section && q.MondaiNumber == mondai && q.Active {
			rows = append(rows, q)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OrderInMondai != rows[j].OrderInMondai {
			return rows[i].OrderInMondai < rows[j].OrderInMondai
		}
		return rows[i].ID < rows[j].ID
	})
	pool := make([]model.SnapshotQuestion, len(rows))
	for i, q := range rows {
		pool[i] = model.SnapshotQuestion{QuestionID: q.ID, CorrectAnswer: q.CorrectAnswer}
	}
	return pool, nil
}

func (m *MemoryStore) Create(_ context.Context, attempt *model.TestAttempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.attempts[attempt.ID]; ok {
		return fmt.Errorf("duplicate attempt id %s", attempt.ID)
	}
	stored := *attempt
	stored.Submissions = nil
	stored.SectionScores = nil
	m.attempts[attempt.ID] = stored
	return nil
}

func (m *MemoryStore) FindByID(_ context.Context, id uuid.UUID) (*model.TestAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.attempts[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := stored
	out.Submissions = m.submissionList(id)
	out.SectionScores = append([]model.SectionScore(nil), m.scores[id]...)
	return &out, nil
}

func (m *MemoryStore) FindAllByOwner(_ context.Context, ownerID string) ([]model.TestAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.TestAttempt
	for _, a := range m.attempts {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

func (m *MemoryStore) UpsertAnswer(_ context.Context, answer *model.UserAnswer) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	attempt, ok := m.attempts[answer.TestAttemptID]
	if !ok || attempt.Status != model.AttemptInProgress {
		return false, nil
	}
	if _, locked := m.submissions[answer.TestAttemptID][answer.SectionType]; locked {
		return false, nil
	}
	byQuestion := m.answers[answer.TestAttemptID]
	if byQuestion == nil {
		byQuestion = make(map[uint]model.UserAnswer)
		m.answers[answer.TestAttemptID] = byQuestion
	}
	stored := *answer
	if prev, ok := byQuestion[answer.QuestionID]; ok {
		stored.ID = prev.ID
	} else {
		stored.ID = m.id()
	}
	byQuestion[answer.QuestionID] = stored
	answer.ID = stored.ID
	return true, nil
}

func (m *MemoryStore) CreateSubmission(_ context.Context, sub *model.SectionSubmission) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bySection := m.submissions[sub.TestAttemptID]
	if bySection == nil {
		bySection = make(map[string]model.SectionSubmission)
		m.submissions[sub.TestAttemptID] = bySection
	}
	if _, exists := bySection[sub.SectionType]; exists {
		return false, nil
	}
	sub.ID = m.id()
	bySection[sub.SectionType] = *sub
	return true, nil
}

func (m *MemoryStore) FindAnswers(_ context.Context, attemptID uuid.UUID) ([]model.UserAnswer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.answerList(attemptID), nil
}

func (m *MemoryStore) Complete(_ context.Context, attemptID uuid.UUID, fn CompletionFunc) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	attempt, ok := m.attempts[attemptID]
	if !ok || attempt.Status != model.AttemptInProgress {
		return false, nil
	}
	c, err := fn(&attempt, m.submissionList(attemptID), m.answerList(attemptID))
	if err != nil || c == nil {
		return false, err
	}
	completedAt := c.CompletedAt
	total := c.TotalScore
	passed := c.IsPassed
	attempt.Status = model.AttemptCompleted
	attempt.CompletedAt = &completedAt
	attempt.TotalScore = &total
	attempt.IsPassed = &passed
	attempt.FailureReasons = datatypes.NewJSONType(c.FailureReasons)
	m.attempts[attemptID] = attempt

	scores := make([]model.SectionScore, len(c.Scores))
	for i, s := range c.Scores {
		s.ID = m.id()
		scores[i] = s
	}
	m.scores[attemptID] = scores
	return true, nil
}

func (m *MemoryStore) submissionList(id uuid.UUID) []model.SectionSubmission {
	var out []model.SectionSubmission
	for _, s := range m.submissions[id] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemoryStore) answerList(id uuid.UUID) []model.UserAnswer {
	var out []model.UserAnswer
	for _, a := range m.answers[id] {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MemoryOfflineResults adapts the store to OfflineResultRepository; the
// method names would otherwise collide with the attempt repository's.
type MemoryOfflineResults struct {
	*MemoryStore
}

func (m *MemoryStore) OfflineResults() OfflineResultRepository {
	return MemoryOfflineResults{m}
}

func (m MemoryOfflineResults) Create(_ context.Context, result *model.OfflineTestResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.offline[result.ID]; ok {
		return fmt.Errorf("duplicate offline result id %s", result.ID)
	}
	for i := range result.SectionScores {
		result.SectionScores[i].ID = m.id()
	}
	stored := *result
	stored.SectionScores = nil
	m.offline[result.ID] = stored
	m.scores[result.ID] = append([]model.SectionScore(nil), result.SectionScores...)
	return nil
}

func (m MemoryOfflineResults) FindByID(_ context.Context, id uuid.UUID) (*model.OfflineTestResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.offline[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := stored
	out.SectionScores = append([]model.SectionScore(nil), m.scores[id]...)
	return &out, nil
}

func (m MemoryOfflineResults) FindAllByOwner(_ context.Context, ownerID string) ([]model.OfflineTestResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.OfflineTestResult
	for _, r := range m.offline {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m MemoryOfflineResults) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.offline[id]; !ok {
		return ErrNotFound
	}
	delete(m.offline, id)
	delete(m.scores, id)
	return nil
}
