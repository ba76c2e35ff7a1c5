package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a client acts before connecting a session.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrUnknownSubject indicates the subject key passed to start could not be resolved.
	ErrUnknownSubject = errors.New("unknown subject")
	// ErrOutOfRange indicates a question access outside a running quiz.
	ErrOutOfRange = errors.New("question index out of range")
	// ErrAlreadyAnswered indicates a second answer for the current question.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrNotAnswered indicates an advance before the current question was answered.
	ErrNotAnswered = errors.New("question not answered")
	// ErrSessionFinished indicates a mutation attempted after the run ended.
	ErrSessionFinished = errors.New("quiz session finished")
	// ErrPersistence wraps non-fatal storage failures; the in-memory result stays valid.
	ErrPersistence = errors.New("persistence failure")
)
