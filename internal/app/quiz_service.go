package app

import (
	"context"

	"edukids-quiz-service/internal/domain"
	"edukids-quiz-service/internal/quiz"
)

// SessionRepository abstracts how per-client run sessions are stored
// (in-memory, Redis-tracked, etc). Implementations own session construction.
type SessionRepository interface {
	GetOrCreate(clientID string) *quiz.Session
	Get(clientID string) (*quiz.Session, bool)
	Delete(clientID string)
}

// SubjectRepository loads subject content (from cache/backing store).
type SubjectRepository interface {
	GetSubject(ctx context.Context, key string) (domain.Subject, error)
	ListSubjects(ctx context.Context) ([]domain.Subject, error)
}

// QuizService contains the quiz use cases: one run session per client,
// subject lookup through the cached repository, last scores via the tracker.
type QuizService struct {
	sessions SessionRepository
	subjects SubjectRepository
	scores   *quiz.ScoreTracker
}

func NewQuizService(sessions SessionRepository, subjects SubjectRepository, scores *quiz.ScoreTracker) *QuizService {
	return &QuizService{sessions: sessions, subjects: subjects, scores: scores}
}

// Connect registers a client and returns its session, creating one if needed.
func (s *QuizService) Connect(_ context.Context, clientID string) *quiz.Session {
	return s.sessions.GetOrCreate(clientID)
}

// Start begins a run for the subject, resetting any previous run state.
func (s *QuizService) Start(ctx context.Context, clientID, subjectKey string) (domain.Snapshot, error) {
	subject, err := s.subjects.GetSubject(ctx, subjectKey)
	if err != nil {
		return domain.Snapshot{}, err
	}
	session := s.sessions.GetOrCreate(clientID)
	return session.Start(ctx, subject), nil
}

// Answer scores the chosen option for the client's current question.
func (s *QuizService) Answer(ctx context.Context, clientID string, chosenIndex int) (domain.AnswerFeedback, error) {
	session, ok := s.sessions.Get(clientID)
	if !ok {
		return domain.AnswerFeedback{}, domain.ErrSessionNotFound
	}
	return session.Answer(ctx, chosenIndex)
}

// Advance moves the client to the next question or finishes the run.
func (s *QuizService) Advance(ctx context.Context, clientID string) (domain.Snapshot, error) {
	session, ok := s.sessions.Get(clientID)
	if !ok {
		return domain.Snapshot{}, domain.ErrSessionNotFound
	}
	return session.Advance(ctx)
}

// Hint returns the hint for the client's current question.
func (s *QuizService) Hint(_ context.Context, clientID string) (string, error) {
	session, ok := s.sessions.Get(clientID)
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return session.Hint()
}

// Subjects returns the menu: every subject with its last persisted score.
func (s *QuizService) Subjects(ctx context.Context) ([]domain.SubjectSummary, error) {
	subjects, err := s.subjects.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.SubjectSummary, 0, len(subjects))
	for _, subject := range subjects {
		summary := domain.SubjectSummary{
			Key:           subject.Key,
			Name:          subject.Name,
			Icon:          subject.Icon,
			QuestionCount: len(subject.Questions),
		}
		if last, ok := s.scores.Last(subject.Key); ok {
			entry := last
			summary.LastScore = &entry
			summary.Stars = quiz.StarsFor(entry.Percentage)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Subscribe returns a channel that receives snapshots for a client's run.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *QuizService) Subscribe(_ context.Context, clientID string) (<-chan domain.Snapshot, func(), error) {
	session, ok := s.sessions.Get(clientID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.Subscribe()
	return ch, cancel, nil
}

// Leave drops the client's session, stopping its countdown.
func (s *QuizService) Leave(_ context.Context, clientID string) {
	session, ok := s.sessions.Get(clientID)
	if !ok {
		return
	}
	session.Close()
	s.sessions.Delete(clientID)
}
