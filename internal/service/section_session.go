package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/dto"
	"github.com/lshigami/nihongo-test/internal/model"
	"github.com/lshigami/nihongo-test/internal/timer"
	"github.com/rs/zerolog/log"
)

type sessionKey struct {
	attemptID uuid.UUID
	section   string
}

type session struct {
	ownerID string
	timer   *timer.Section
}

// SectionSessions runs one server-side countdown per timed section and
// submits the section when time runs out.
type SectionSessions struct {
	attempts AttemptService
	unit     time.Duration // length of one configured "second"

	mu       sync.Mutex
	sessions map[sessionKey]*session
}

func NewSectionSessions(attempts AttemptService) *SectionSessions {
	return &SectionSessions{
		attempts: attempts,
		unit:     time.Second,
		sessions: make(map[sessionKey]*session),
	}
}

// Start begins the countdown for a section. Starting a section that is
// already counting down returns the running timer.
func (s *SectionSessions) Start(ctx context.Context, ownerID string, attemptID uuid.UUID, section string) (*dto.SectionTimerDTO, error) {
	detail, err := s.attempts.Get(ctx, ownerID, attemptID)
	if err != nil {
		return nil, err
	}
	if detail.Status == model.AttemptCompleted {
		return nil, ErrAttemptClosed
	}
	var target *dto.SnapshotSectionDTO
	for i := range detail.Sections {
		if detail.Sections[i].SectionType == section {
			target = &detail.Sections[i]
		}
	}
	if target == nil {
		return nil, ErrSectionNotInAttempt
	}
	if target.Locked {
		return nil, ErrSectionLocked
	}

	key := sessionKey{attemptID, section}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[key]; ok {
		return s.view(key, existing), nil
	}

	duration := time.Duration(target.DurationSeconds) * s.unit
	t := timer.NewSection(duration, func(elapsed time.Duration) {
		s.expire(key, ownerID, elapsed)
	})
	if err := t.Start(); err != nil {
		return nil, err
	}
	sess := &session{ownerID: ownerID, timer: t}
	s.sessions[key] = sess
	log.Info().Str("attemptID", attemptID.String()).Str("section", section).Dur("duration", duration).Msg("Section timer started")
	return s.view(key, sess), nil
}

func (s *SectionSessions) expire(key sessionKey, ownerID string, elapsed time.Duration) {
	s.mu.Lock()
	delete(s.sessions, key)
	s.mu.Unlock()

	spent := int(elapsed / s.unit)
	_, err := s.attempts.SubmitSection(context.Background(), ownerID, key.attemptID, key.section, spent)
	switch {
	case err == nil:
		log.Info().Str("attemptID", key.attemptID.String()).Str("section", key.section).Msg("Section auto-submitted on time expiry")
	case errors.Is(err, ErrAlreadySubmitted), errors.Is(err, ErrAttemptClosed):
		log.Debug().Str("attemptID", key.attemptID.String()).Str("section", key.section).Msg("Section closed before its timer expired")
	default:
		log.Error().Err(err).Str("attemptID", key.attemptID.String()).Str("section", key.section).Msg("Auto-submit on expiry failed")
	}
}

// Stop cancels a countdown without submitting, e.g. after the candidate
// submitted by hand.
func (s *SectionSessions) Stop(attemptID uuid.UUID, section string) {
	key := sessionKey{attemptID, section}
	s.mu.Lock()
	sess, ok := s.sessions[key]
	delete(s.sessions, key)
	s.mu.Unlock()
	if ok {
		sess.timer.Stop()
	}
}

// Remaining reports the countdown for the owner of the attempt.
func (s *SectionSessions) Remaining(ownerID string, attemptID uuid.UUID, section string) (*dto.SectionTimerDTO, error) {
	key := sessionKey{attemptID, section}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok || sess.ownerID != ownerID {
		return nil, ErrNotFound
	}
	return s.view(key, sess), nil
}

// StopAll cancels every countdown; used on shutdown.
func (s *SectionSessions) StopAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[sessionKey]*session)
	s.mu.Unlock()
	for _, sess := range sessions {
		sess.timer.Stop()
	}
}

func (s *SectionSessions) view(key sessionKey, sess *session) *dto.SectionTimerDTO {
	return &dto.SectionTimerDTO{
		AttemptID:        key.attemptID,
		SectionType:      key.section,
		State:            sess.timer.State().String(),
		RemainingSeconds: int(sess.timer.Remaining() / s.unit),
	}
}
