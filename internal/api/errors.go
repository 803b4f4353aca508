package api

import (
	"errors"
	"log"
)

var (
	// ErrTransport reports a network call that could not complete: timeout,
	// connection failure, or a non-success upstream status.
	ErrTransport = errors.New("youtube: transport failure")

	// ErrDecode reports a response body that could not be parsed as JSON.
	ErrDecode = errors.New("youtube: decode failure")
)

// ErrorReporter receives every fetch failure once before it is returned to
// the caller.
type ErrorReporter interface {
	ReportError(err error)
}

// LogReporter writes failures to the standard logger. It is the default sink.
type LogReporter struct{}

func (LogReporter) ReportError(err error) {
	log.Printf("YouTube API error: %v", err)
}
