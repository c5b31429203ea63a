package service

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/dto"
	"github.com/lshigami/nihongo-test/internal/model"
	"github.com/lshigami/nihongo-test/internal/repository"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"github.com/lshigami/nihongo-test/internal/snapshot"
)

const owner = "user-1"

func testExam() *scoring.Config {
	section := func(typ string, mondai ...scoring.MondaiConfig) scoring.SectionConfig {
		return scoring.SectionConfig{
			Type: typ, ScaleMax: 60, PassMark: 19, GradeCutA: 40, GradeCutB: 20,
			DurationMinutes: 1, Mondai: mondai,
		}
	}
	return &scoring.Config{
		Version: "test-1",
		Levels: []scoring.LevelConfig{{
			Level:         "N5",
			TotalPassMark: 80,
			Sections: []scoring.SectionConfig{
				section("vocabulary",
					scoring.MondaiConfig{Number: 1, Questions: 4, Weight: 1},
					scoring.MondaiConfig{Number: 2, Questions: 4, Weight: 1.5}),
				section("grammar_reading",
					scoring.MondaiConfig{Number: 1, Questions: 4, Weight: 1}),
				section("listening",
					scoring.MondaiConfig{Number: 1, Questions: 3, Weight: 2}),
			},
		}},
	}
}

type fixture struct {
	store    *repository.MemoryStore
	exam     *scoring.Config
	attempts *attemptService
	offline  *offlineResultService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	exam := testExam()
	store := repository.NewMemoryStore()
	store.SeedBank(exam, 2)
	return &fixture{
		store:    store,
		exam:     exam,
		attempts: NewAttemptService(store, snapshot.NewBuilder(store, nil), exam).(*attemptService),
		offline:  NewOfflineResultService(store.OfflineResults(), exam).(*offlineResultService),
	}
}

func (f *fixture) create(t *testing.T, mode string, practice *string) uuid.UUID {
	t.Helper()
	created, err := f.attempts.Create(context.Background(), owner, dto.CreateAttemptRequest{Level: "N5", Mode: mode, PracticeSection: practice})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return created.ID
}

func (f *fixture) snapshotOf(t *testing.T, id uuid.UUID) model.QuestionSnapshot {
	t.Helper()
	a, err := f.store.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	return a.Snapshot.Data()
}

// answer marks the first `correct` questions of each mondai right and the
// rest wrong.
func (f *fixture) answer(t *testing.T, id uuid.UUID, section string, correct map[int]int) {
	t.Helper()
	sec, ok := f.snapshotOf(t, id).Section(section)
	if !ok {
		t.Fatalf("section %s not in snapshot", section)
	}
	for _, m := range sec.Mondai {
		for i, q := range m.Questions {
			choice := (q.CorrectAnswer + 1) % 4
			if i < correct[m.Number] {
				choice = q.CorrectAnswer
			}
			if _, err := f.attempts.RecordAnswer(context.Background(), owner, id, q.QuestionID, &choice); err != nil {
				t.Fatalf("RecordAnswer(%d): %v", q.QuestionID, err)
			}
		}
	}
}

func (f *fixture) submit(t *testing.T, id uuid.UUID, section string) *dto.SubmitSectionResponseDTO {
	t.Helper()
	resp, err := f.attempts.SubmitSection(context.Background(), owner, id, section, 30)
	if err != nil {
		t.Fatalf("SubmitSection(%s): %v", section, err)
	}
	return resp
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreate_SnapshotSurvivesBankChanges(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "full", nil)
	before := f.snapshotOf(t, id)

	// Edit and delete bank rows that the snapshot references.
	first := before.Sections[0].Mondai[0].Questions[0]
	f.store.UpdateQuestion(model.Question{
		ID: first.QuestionID, Level: "N5", SectionType: "vocabulary", MondaiNumber: 1,
		CorrectAnswer: (first.CorrectAnswer + 2) % 4, Active: true,
	})
	f.store.DeleteQuestion(before.Sections[1].Mondai[0].Questions[0].QuestionID)

	if after := f.snapshotOf(t, id); !reflect.DeepEqual(before, after) {
		t.Fatalf("snapshot changed after bank edits:\nbefore %+v\nafter  %+v", before, after)
	}

	// Scoring uses the frozen correct answers: all-correct stays 60.
	f.answer(t, id, "vocabulary", map[int]int{1: 4, 2: 4})
	for _, sec := range []string{"vocabulary", "grammar_reading", "listening"} {
		f.submit(t, id, sec)
	}
	detail, err := f.attempts.Get(context.Background(), owner, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := detail.SectionScores[0].NormalizedScore; got != 60 {
		t.Fatalf("vocabulary normalized = %d, want 60", got)
	}
}

func TestCreate_Modes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	full, err := f.attempts.Create(ctx, owner, dto.CreateAttemptRequest{Level: "N5", Mode: "full"})
	if err != nil {
		t.Fatalf("full: %v", err)
	}
	if len(full.Sections) != 3 || full.Sections[0].QuestionCount != 8 || full.Sections[0].DurationSeconds != 60 {
		t.Fatalf("full sections = %+v", full.Sections)
	}
	if full.ScoringVersion != "test-1" || full.Status != model.AttemptInProgress {
		t.Fatalf("created = %+v", full)
	}

	practice, err := f.attempts.Create(ctx, owner, dto.CreateAttemptRequest{Level: "N5", Mode: "section", PracticeSection: strPtr("listening")})
	if err != nil {
		t.Fatalf("section: %v", err)
	}
	if len(practice.Sections) != 1 || practice.Sections[0].SectionType != "listening" {
		t.Fatalf("practice sections = %+v", practice.Sections)
	}

	tests := []struct {
		name string
		req  dto.CreateAttemptRequest
		want error
	}{
		{name: "unknown level", req: dto.CreateAttemptRequest{Level: "N9", Mode: "full"}, want: scoring.ErrUnknownLevel},
		{name: "unknown practice section", req: dto.CreateAttemptRequest{Level: "N5", Mode: "section", PracticeSection: strPtr("writing")}, want: scoring.ErrUnknownSection},
		{name: "section mode without section", req: dto.CreateAttemptRequest{Level: "N5", Mode: "section"}, want: ErrInvalidMode},
		{name: "unknown mode", req: dto.CreateAttemptRequest{Level: "N5", Mode: "mock"}, want: ErrInvalidMode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.attempts.Create(ctx, owner, tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("Create error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCreate_InsufficientQuestionsPersistsNothing(t *testing.T) {
	exam := testExam()
	store := repository.NewMemoryStore()
	svc := NewAttemptService(store, snapshot.NewBuilder(store, nil), exam)

	_, err := svc.Create(context.Background(), owner, dto.CreateAttemptRequest{Level: "N5", Mode: "full"})
	if !errors.Is(err, ErrInsufficientQuestions) {
		t.Fatalf("Create error = %v, want ErrInsufficientQuestions", err)
	}
	list, err := svc.ListByOwner(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("attempt persisted despite failure: %+v", list)
	}
}

func TestRecordAnswer_Guards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, "full", nil)
	snap := f.snapshotOf(t, id)
	vocabQ := snap.Sections[0].Mondai[0].Questions[0].QuestionID
	listeningQ := snap.Sections[2].Mondai[0].Questions[0].QuestionID
	f.submit(t, id, "vocabulary")

	completedID := f.create(t, "section", strPtr("grammar_reading"))
	f.submit(t, completedID, "grammar_reading")
	completedQ := f.snapshotOf(t, completedID).Sections[0].Mondai[0].Questions[0].QuestionID

	tests := []struct {
		name       string
		requester  string
		attemptID  uuid.UUID
		questionID uint
		selected   *int
		want       error
	}{
		{name: "missing attempt", requester: owner, attemptID: uuid.New(), questionID: vocabQ, selected: intPtr(1), want: ErrNotFound},
		{name: "foreign attempt", requester: "user-2", attemptID: id, questionID: listeningQ, selected: intPtr(1), want: ErrForbidden},
		{name: "completed attempt", requester: owner, attemptID: completedID, questionID: completedQ, selected: intPtr(1), want: ErrAttemptClosed},
		{name: "question outside snapshot", requester: owner, attemptID: id, questionID: 999999, selected: intPtr(1), want: ErrQuestionNotInAttempt},
		{name: "submitted section", requester: owner, attemptID: id, questionID: vocabQ, selected: intPtr(1), want: ErrSectionLocked},
		{name: "negative choice", requester: owner, attemptID: id, questionID: listeningQ, selected: intPtr(-1), want: ErrInvalidAnswer},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.attempts.RecordAnswer(ctx, tc.requester, tc.attemptID, tc.questionID, tc.selected)
			if !errors.Is(err, tc.want) {
				t.Fatalf("RecordAnswer error = %v, want %v", err, tc.want)
			}
		})
	}

	t.Run("overwrite then unanswer", func(t *testing.T) {
		if _, err := f.attempts.RecordAnswer(ctx, owner, id, listeningQ, intPtr(2)); err != nil {
			t.Fatalf("first answer: %v", err)
		}
		if _, err := f.attempts.RecordAnswer(ctx, owner, id, listeningQ, intPtr(3)); err != nil {
			t.Fatalf("overwrite: %v", err)
		}
		if _, err := f.attempts.RecordAnswer(ctx, owner, id, listeningQ, nil); err != nil {
			t.Fatalf("unanswer: %v", err)
		}
		answers, _ := f.store.FindAnswers(ctx, id)
		if len(answers) != 1 || answers[0].SelectedAnswer != nil || answers[0].SectionType != "listening" {
			t.Fatalf("answers = %+v, want one blank listening answer", answers)
		}
	})
}

func TestRecordAnswer_ConcurrentWithSubmit(t *testing.T) {
	tests := []struct {
		name    string
		writers int
		rounds  int
	}{
		{name: "few writers", writers: 8, rounds: 20},
		{name: "many writers", writers: 100, rounds: 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for round := 0; round < tc.rounds; round++ {
				f := newFixture(t)
				ctx := context.Background()
				id := f.create(t, "full", nil)
				sec, _ := f.snapshotOf(t, id).Section("vocabulary")
				var questions []uint
				for _, m := range sec.Mondai {
					for _, q := range m.Questions {
						questions = append(questions, q.QuestionID)
					}
				}

				var submitted atomic.Bool
				var frozen []model.UserAnswer
				start := make(chan struct{})
				errs := make([]error, tc.writers)
				afterSubmit := make([]bool, tc.writers)
				var wg sync.WaitGroup
				for i := 0; i < tc.writers; i++ {
					wg.Add(1)
					go func(i int) {
						defer wg.Done()
						<-start
						afterSubmit[i] = submitted.Load()
						_, errs[i] = f.attempts.RecordAnswer(ctx, owner, id, questions[i%len(questions)], intPtr(i%4))
					}(i)
				}
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					if _, err := f.attempts.SubmitSection(ctx, owner, id, "vocabulary", 10); err != nil {
						t.Errorf("SubmitSection: %v", err)
						return
					}
					frozen, _ = f.store.FindAnswers(ctx, id)
					submitted.Store(true)
				}()
				close(start)
				wg.Wait()

				for i, err := range errs {
					if err != nil && !errors.Is(err, ErrSectionLocked) {
						t.Fatalf("round %d writer %d: error = %v, want nil or ErrSectionLocked", round, i, err)
					}
					if afterSubmit[i] && err == nil {
						t.Fatalf("round %d writer %d: answer accepted after the submit returned", round, i)
					}
				}
				if _, err := f.attempts.RecordAnswer(ctx, owner, id, questions[0], intPtr(0)); !errors.Is(err, ErrSectionLocked) {
					t.Fatalf("round %d: late answer error = %v, want ErrSectionLocked", round, err)
				}
				final, _ := f.store.FindAnswers(ctx, id)
				if !reflect.DeepEqual(frozen, final) {
					t.Fatalf("round %d: answers changed after submit:\nat submit %+v\nfinal     %+v", round, frozen, final)
				}
			}
		})
	}
}

func TestSubmitSection_ConcurrentSubmitsOneWins(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "full", nil)

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.attempts.SubmitSection(context.Background(), owner, id, "vocabulary", i)
		}(i)
	}
	wg.Wait()

	wins, dupes := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrAlreadySubmitted):
			dupes++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || dupes != n-1 {
		t.Fatalf("wins=%d dupes=%d, want 1 and %d", wins, dupes, n-1)
	}
	a, _ := f.store.FindByID(context.Background(), id)
	if len(a.Submissions) != 1 {
		t.Fatalf("submissions = %d, want 1", len(a.Submissions))
	}
}

func TestSubmitSection_Guards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, "section", strPtr("listening"))

	if _, err := f.attempts.SubmitSection(ctx, owner, id, "listening", -1); !errors.Is(err, ErrInvalidTimeSpent) {
		t.Fatalf("negative time error = %v", err)
	}
	if _, err := f.attempts.SubmitSection(ctx, owner, id, "vocabulary", 10); !errors.Is(err, ErrSectionNotInAttempt) {
		t.Fatalf("foreign section error = %v", err)
	}
	if _, err := f.attempts.SubmitSection(ctx, "user-2", id, "listening", 10); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-owner error = %v", err)
	}

	resp := f.submit(t, id, "listening")
	if !resp.AttemptCompleted || resp.Submission.SectionType != "listening" || resp.Submission.TimeSpentSeconds != 30 {
		t.Fatalf("submit response = %+v", resp)
	}
	if _, err := f.attempts.SubmitSection(ctx, owner, id, "listening", 10); !errors.Is(err, ErrAttemptClosed) {
		t.Fatalf("submit after completion error = %v", err)
	}
}

func TestSubmitSection_CompletesOnlyAfterLastSection(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "full", nil)

	if resp := f.submit(t, id, "listening"); resp.AttemptCompleted {
		t.Fatal("completed after first of three sections")
	}
	if resp := f.submit(t, id, "vocabulary"); resp.AttemptCompleted {
		t.Fatal("completed after second of three sections")
	}
	if resp := f.submit(t, id, "grammar_reading"); !resp.AttemptCompleted {
		t.Fatal("not completed after last section")
	}
}

func TestTryComplete_RacingCallsCompleteOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, "full", nil)
	for _, sec := range []string{"vocabulary", "grammar_reading", "listening"} {
		if ok, err := f.store.CreateSubmission(ctx, &model.SectionSubmission{TestAttemptID: id, SectionType: sec, SubmittedAt: time.Now()}); !ok || err != nil {
			t.Fatalf("seed submission %s: %v %v", sec, ok, err)
		}
	}

	const n = 10
	var wg sync.WaitGroup
	results := make([]bool, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := f.attempts.TryComplete(ctx, id)
			if err != nil {
				t.Errorf("TryComplete: %v", err)
			}
			results[i] = ok
		}(i)
	}
	wg.Wait()

	completed := 0
	for _, ok := range results {
		if ok {
			completed++
		}
	}
	if completed != 1 {
		t.Fatalf("completions = %d, want 1", completed)
	}
	a, _ := f.store.FindByID(ctx, id)
	if len(a.SectionScores) != 3 {
		t.Fatalf("section scores = %d, want 3", len(a.SectionScores))
	}
}

func TestTryComplete_NoOpWhileSectionsOpen(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "full", nil)
	f.submit(t, id, "vocabulary")

	ok, err := f.attempts.TryComplete(context.Background(), id)
	if err != nil || ok {
		t.Fatalf("TryComplete = %v, %v; want false, nil", ok, err)
	}
}

func TestComplete_BlankAttemptScoresZero(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "full", nil)
	for _, sec := range []string{"vocabulary", "grammar_reading", "listening"} {
		f.submit(t, id, sec)
	}

	detail, err := f.attempts.Get(context.Background(), owner, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Status != model.AttemptCompleted || *detail.TotalScore != 0 || *detail.IsPassed {
		t.Fatalf("detail = %+v", detail)
	}
	for _, s := range detail.SectionScores {
		if s.NormalizedScore != 0 || s.ReferenceGrade != scoring.GradeC || s.IsPassed {
			t.Fatalf("blank section scored %+v", s)
		}
	}
	if len(detail.FailureReasons) != 4 || detail.FailureReasons[3].Kind != scoring.FailureTotalBelowMinimum {
		t.Fatalf("failure reasons = %+v", detail.FailureReasons)
	}
}

func TestGet_RevealsAnswersOnlyWhenCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, "section", strPtr("listening"))

	detail, err := f.attempts.Get(ctx, owner, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	q := detail.Sections[0].Mondai[0].Questions[0]
	if q.CorrectAnswer != nil || detail.TotalScore != nil || detail.SectionScores != nil {
		t.Fatalf("in-progress detail leaks results: %+v", detail)
	}

	f.submit(t, id, "listening")
	detail, err = f.attempts.Get(ctx, owner, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Sections[0].Mondai[0].Questions[0].CorrectAnswer == nil || detail.TotalScore == nil {
		t.Fatalf("completed detail hides results: %+v", detail)
	}
	if !detail.Sections[0].Locked {
		t.Fatal("submitted section not marked locked")
	}

	if _, err := f.attempts.Get(ctx, "user-2", id); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign Get error = %v", err)
	}
	if _, err := f.attempts.GetForReview(ctx, id); err != nil {
		t.Fatalf("GetForReview: %v", err)
	}
}

func TestGet_SettlesFullySubmittedAttempt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, "section", strPtr("vocabulary"))
	// Submission written without the follow-up completion.
	if ok, err := f.store.CreateSubmission(ctx, &model.SectionSubmission{TestAttemptID: id, SectionType: "vocabulary", SubmittedAt: time.Now()}); !ok || err != nil {
		t.Fatalf("seed submission: %v %v", ok, err)
	}

	detail, err := f.attempts.Get(ctx, owner, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Status != model.AttemptCompleted {
		t.Fatalf("status = %s, want completed", detail.Status)
	}
}

// failingCompleteRepo fails the first Complete call and then delegates.
type failingCompleteRepo struct {
	*repository.MemoryStore
	failed atomic.Bool
}

func (r *failingCompleteRepo) Complete(ctx context.Context, attemptID uuid.UUID, fn repository.CompletionFunc) (bool, error) {
	if r.failed.CompareAndSwap(false, true) {
		return false, errors.New("connection reset")
	}
	return r.MemoryStore.Complete(ctx, attemptID, fn)
}

func TestSubmitSection_DeferredCompletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewAttemptService(&failingCompleteRepo{MemoryStore: f.store}, snapshot.NewBuilder(f.store, nil), f.exam)

	created, err := svc.Create(ctx, owner, dto.CreateAttemptRequest{Level: "N5", Mode: "section", PracticeSection: strPtr("listening")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	resp, err := svc.SubmitSection(ctx, owner, created.ID, "listening", 40)
	if err != nil {
		t.Fatalf("SubmitSection error = %v, want success despite failed completion", err)
	}
	if resp.AttemptCompleted {
		t.Fatal("AttemptCompleted = true after a failed completion")
	}
	if a, _ := f.store.FindByID(ctx, created.ID); a.Status != model.AttemptInProgress || len(a.Submissions) != 1 {
		t.Fatalf("stored attempt = %+v, want in_progress with one submission", a)
	}

	detail, err := svc.Get(ctx, owner, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Status != model.AttemptCompleted || detail.TotalScore == nil {
		t.Fatalf("detail after read = %+v, want completed with a score", detail)
	}
}

func TestOfflineMatchesOnlineScoring(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, "full", nil)

	counts := map[string]map[int]int{
		"vocabulary":      {1: 3, 2: 2},
		"grammar_reading": {1: 1},
		"listening":       {1: 3},
	}
	for sec, c := range counts {
		f.answer(t, id, sec, c)
	}
	for _, sec := range []string{"vocabulary", "grammar_reading", "listening"} {
		f.submit(t, id, sec)
	}
	online, err := f.attempts.Get(ctx, owner, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	var entries []dto.OfflineEntryRequest
	for _, sec := range f.exam.Levels[0].Sections {
		for _, m := range sec.Mondai {
			entries = append(entries, dto.OfflineEntryRequest{
				SectionType: sec.Type, Subsection: m.Number,
				Correct: counts[sec.Type][m.Number], Total: m.Questions,
			})
		}
	}
	offline, err := f.offline.Record(ctx, owner, dto.OfflineResultRequest{Level: "N5", Mode: "full", Entries: entries})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if !reflect.DeepEqual(online.SectionScores, offline.SectionScores) {
		t.Fatalf("section scores differ:\nonline  %+v\noffline %+v", online.SectionScores, offline.SectionScores)
	}
	if *online.TotalScore != offline.TotalScore || *online.IsPassed != offline.IsPassed {
		t.Fatalf("verdicts differ: online %d/%t offline %d/%t", *online.TotalScore, *online.IsPassed, offline.TotalScore, offline.IsPassed)
	}
	if !reflect.DeepEqual(online.FailureReasons, offline.FailureReasons) {
		t.Fatalf("failure reasons differ: %+v vs %+v", online.FailureReasons, offline.FailureReasons)
	}
}

func TestSectionInputs_BlankAndMissingAreWrong(t *testing.T) {
	snap := model.QuestionSnapshot{Sections: []model.SnapshotSection{{
		SectionType: "vocabulary",
		Mondai: []model.SnapshotMondai{{Number: 1, Questions: []model.SnapshotQuestion{
			{QuestionID: 1, CorrectAnswer: 2},
			{QuestionID: 2, CorrectAnswer: 0},
			{QuestionID: 3, CorrectAnswer: 1},
		}}},
	}}}
	answers := []model.UserAnswer{
		{QuestionID: 1, SelectedAnswer: intPtr(2)},
		{QuestionID: 2, SelectedAnswer: nil},
	}
	got := SectionInputs(snap, answers)
	want := []scoring.SectionInput{{SectionType: "vocabulary", Mondai: []scoring.MondaiInput{{Number: 1, Correct: 1, Total: 3}}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SectionInputs = %+v, want %+v", got, want)
	}
}

func TestListByOwner_OnlyOwnAttempts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.create(t, "full", nil)
	f.create(t, "section", strPtr("listening"))
	if _, err := f.attempts.Create(ctx, "user-2", dto.CreateAttemptRequest{Level: "N5", Mode: "full"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := f.attempts.ListByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("attempts = %d, want 2", len(list))
	}
}
