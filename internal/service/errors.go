package service

import "errors"

var (
	// ErrQuestionMismatch means an answer was submitted for a question other
	// than the session's current one (stale or replayed client state).
	ErrQuestionMismatch = errors.New("submitted question does not match the current question")

	// ErrSessionNotActive means the session has already completed.
	ErrSessionNotActive = errors.New("session is not in progress")

	// ErrQuestionGenerationFailed means neither the oracle nor the built-in
	// templates produced any questions. Session creation must fail on it.
	ErrQuestionGenerationFailed = errors.New("question generation produced no questions")

	// ErrOracleUnavailable covers a missing API key or a transport-level
	// failure talking to the oracle. Callers degrade to local fallbacks.
	ErrOracleUnavailable = errors.New("oracle is unavailable")

	// ErrOracleBadResponse means the oracle answered but its payload did not
	// match the expected schema. Treated as failure, never silently patched.
	ErrOracleBadResponse = errors.New("oracle returned a malformed response")
)
