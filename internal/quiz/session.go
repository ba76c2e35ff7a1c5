package quiz

import (
	"context"
	"log"
	"sync"
	"time"

	"edukids-quiz-service/internal/domain"
)

// DefaultRunSeconds is the whole-run countdown used when none is configured.
const DefaultRunSeconds = 180

// Config holds the per-run settings shared by every session.
type Config struct {
	RunSeconds   int           // countdown for the whole run, not per question
	TickInterval time.Duration // zero disables the scheduler (manual ticks in tests)
}

// DefaultConfig returns the production settings: 3 minutes, one tick per second.
func DefaultConfig() Config {
	return Config{RunSeconds: DefaultRunSeconds, TickInterval: time.Second}
}

// Session is the quiz run state machine: Idle -> Running -> Finished.
// One countdown timer spans the whole run; answers are scored +10/-5 and the
// trophy total is never clamped. Every event handler runs to completion under
// the session lock, so a tick and an answer never interleave mid-mutation.
type Session struct {
	cfg    Config
	scores *ScoreTracker
	timer  *Timer

	mu               sync.Mutex
	generation       uint64
	phase            domain.Phase
	subject          domain.Subject
	questionIndex    int
	correctCount     int
	trophyPoints     int
	history          []domain.AnswerRecord
	answered         bool
	lastDelta        int
	remainingSeconds int
	result           *domain.RunResult
	subscribers      map[chan domain.Snapshot]struct{}
}

// NewSession builds an idle session. Start begins a run.
func NewSession(scores *ScoreTracker, cfg Config) *Session {
	if cfg.RunSeconds <= 0 {
		cfg.RunSeconds = DefaultRunSeconds
	}
	s := &Session{
		cfg:         cfg,
		scores:      scores,
		phase:       domain.PhaseIdle,
		subscribers: make(map[chan domain.Snapshot]struct{}),
	}
	s.timer = s.newRunTimer(0)
	return s
}

// newRunTimer binds a timer to one run. Callbacks carry the generation that
// armed them, so a tick left in flight across a restart identifies itself as
// stale instead of mutating the new run.
func (s *Session) newRunTimer(generation uint64) *Timer {
	return NewTimer(s.cfg.TickInterval,
		func(remaining int) { s.handleTick(generation, remaining) },
		func() { s.handleExpiry(generation) },
	)
}

// Start resets all run state for the subject and starts the countdown.
// Valid from any phase; a prior run's history and timer are discarded.
func (s *Session) Start(ctx context.Context, subject domain.Subject) domain.Snapshot {
	s.mu.Lock()
	s.timer.Stop()
	s.generation++
	s.timer = s.newRunTimer(s.generation)
	timer := s.timer
	s.phase = domain.PhaseRunning
	s.subject = subject
	s.questionIndex = 0
	s.correctCount = 0
	s.trophyPoints = 0
	s.history = nil
	s.answered = false
	s.lastDelta = 0
	s.remainingSeconds = s.cfg.RunSeconds
	s.result = nil
	snap := s.broadcastLocked("question")
	s.mu.Unlock()

	timer.Start(s.cfg.RunSeconds)
	return snap
}

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() (domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseRunning || s.questionIndex >= len(s.subject.Questions) {
		return domain.Question{}, domain.ErrOutOfRange
	}
	return s.subject.Questions[s.questionIndex], nil
}

// Answer scores the chosen option for the current question. Each question
// accepts exactly one answer; an out-of-range index scores as incorrect
// rather than failing. The state either fully applies or fully rejects.
func (s *Session) Answer(ctx context.Context, chosenIndex int) (domain.AnswerFeedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case domain.PhaseFinished:
		return domain.AnswerFeedback{}, domain.ErrSessionFinished
	case domain.PhaseIdle:
		return domain.AnswerFeedback{}, domain.ErrOutOfRange
	}
	if s.answered {
		return domain.AnswerFeedback{}, domain.ErrAlreadyAnswered
	}
	// A subject row may carry no questions at all; never index past the list.
	if s.questionIndex >= len(s.subject.Questions) {
		return domain.AnswerFeedback{}, domain.ErrOutOfRange
	}

	question := s.subject.Questions[s.questionIndex]
	wasCorrect := chosenIndex == question.CorrectIndex

	delta := -5
	if wasCorrect {
		delta = 10
		s.correctCount++
	}
	s.trophyPoints += delta
	s.lastDelta = delta
	s.answered = true
	s.history = append(s.history, domain.AnswerRecord{
		QuestionText: question.Text,
		ChosenIndex:  chosenIndex,
		CorrectIndex: question.CorrectIndex,
		WasCorrect:   wasCorrect,
	})

	s.broadcastLocked("answer")
	return domain.AnswerFeedback{
		Correct:      wasCorrect,
		Delta:        delta,
		TrophyPoints: s.trophyPoints,
		CorrectIndex: question.CorrectIndex,
	}, nil
}

// Advance moves to the next question, or finishes the run after the last one.
// Advancing before the current question is answered is a caller error.
func (s *Session) Advance(ctx context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case domain.PhaseFinished:
		return domain.Snapshot{}, domain.ErrSessionFinished
	case domain.PhaseIdle:
		return domain.Snapshot{}, domain.ErrOutOfRange
	}
	if !s.answered {
		return domain.Snapshot{}, domain.ErrNotAnswered
	}

	s.questionIndex++
	s.answered = false
	s.lastDelta = 0
	if s.questionIndex == len(s.subject.Questions) {
		return s.finishLocked(ctx), nil
	}
	return s.broadcastLocked("question"), nil
}

// Hint returns the current question's hint without mutating run state.
func (s *Session) Hint() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseRunning || s.questionIndex >= len(s.subject.Questions) {
		return "", domain.ErrOutOfRange
	}
	return s.subject.Questions[s.questionIndex].Hint, nil
}

// Result returns the terminal summary of a finished run.
func (s *Session) Result() (domain.RunResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return domain.RunResult{}, domain.ErrOutOfRange
	}
	return *s.result, nil
}

// Snapshot returns the current render state.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked("state")
}

// Subscribe returns a channel receiving a snapshot after every mutation.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *Session) Subscribe() (<-chan domain.Snapshot, func()) {
	ch := make(chan domain.Snapshot, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.snapshotLocked("state")
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Close stops the countdown and drops all subscribers.
func (s *Session) Close() {
	s.mu.Lock()
	s.timer.Stop()
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
	s.mu.Unlock()
}

// Tick advances the countdown by one second; exposed for manual-drive tests.
func (s *Session) Tick() {
	s.mu.Lock()
	timer := s.timer
	s.mu.Unlock()
	timer.Tick()
}

func (s *Session) handleTick(generation uint64, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation || s.phase != domain.PhaseRunning {
		return
	}
	s.remainingSeconds = remaining
	s.broadcastLocked("tick")
}

func (s *Session) handleExpiry(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation || s.phase != domain.PhaseRunning {
		return
	}
	// Omit, don't penalize: the question on screen contributes no record.
	s.finishLocked(context.Background())
}

// finishLocked is the idempotent terminal step. The caller holds s.mu.
func (s *Session) finishLocked(ctx context.Context) domain.Snapshot {
	if s.phase == domain.PhaseFinished {
		return s.snapshotLocked("finished")
	}
	s.phase = domain.PhaseFinished
	s.timer.Stop()

	total := len(s.subject.Questions)
	percentage := Percentage(s.correctCount, total)
	history := make([]domain.AnswerRecord, len(s.history))
	copy(history, s.history)

	s.result = &domain.RunResult{
		SubjectKey:   s.subject.Key,
		Correct:      s.correctCount,
		Total:        total,
		TrophyPoints: s.trophyPoints,
		Percentage:   percentage,
		Stars:        StarsFor(percentage),
		Message:      resultMessage(percentage),
		History:      history,
	}

	if s.scores != nil {
		if _, err := s.scores.Record(ctx, s.subject.Key, s.correctCount, total, s.trophyPoints); err != nil {
			log.Printf("record last score for %s: %v", s.subject.Key, err)
		}
	}
	return s.broadcastLocked("finished")
}

func (s *Session) broadcastLocked(event string) domain.Snapshot {
	snap := s.snapshotLocked(event)
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot so a slow consumer never blocks the run.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	return snap
}

func (s *Session) snapshotLocked(event string) domain.Snapshot {
	snap := domain.Snapshot{
		Event:            event,
		Phase:            s.phase,
		SubjectKey:       s.subject.Key,
		SubjectName:      s.subject.Name,
		QuestionIndex:    s.questionIndex,
		TotalQuestions:   len(s.subject.Questions),
		RemainingSeconds: s.remainingSeconds,
		TimeDisplay:      FormatSeconds(s.remainingSeconds),
		TrophyPoints:     s.trophyPoints,
		LastDelta:        s.lastDelta,
		CorrectCount:     s.correctCount,
	}
	if s.phase == domain.PhaseRunning && s.questionIndex < len(s.subject.Questions) {
		q := s.subject.Questions[s.questionIndex]
		snap.Question = &domain.QuestionView{Text: q.Text, Options: q.Options}
	}
	if s.result != nil {
		result := *s.result
		snap.Result = &result
	}
	return snap
}

// resultMessage picks the feedback tier for a final percentage.
func resultMessage(percentage int) string {
	switch {
	case percentage >= 90:
		return "Excelente! Você é um gênio!"
	case percentage >= 70:
		return "Muito bem! Você está indo muito bem!"
	case percentage >= 50:
		return "Bom trabalho! Continue estudando!"
	default:
		return "Não desista! Pratique mais e você vai melhorar!"
	}
}
