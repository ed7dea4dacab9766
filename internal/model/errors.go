package model

import "errors"

// Failure taxonomy. Every component-level failure is mapped onto one of these
// before it reaches the coordinator; nothing else crosses into a reply.
var (
	// ErrEntityNotFound means no ticker or date could be extracted from the message.
	ErrEntityNotFound = errors.New("no recognizable entity in message")

	// ErrSourceUnavailable means an upstream fetch failed (network, rate limit, bad payload).
	ErrSourceUnavailable = errors.New("upstream data source unavailable")

	// ErrNoDataInRange means the fetch succeeded but nothing fell inside the requested range.
	ErrNoDataInRange = errors.New("no data in requested range")

	// ErrUnrecognizedPersona means a switch request named no known persona.
	ErrUnrecognizedPersona = errors.New("unrecognized persona")
)
