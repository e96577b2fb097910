package automation

import (
	"errors"
	"fmt"

	"brandvoice/config"
	"brandvoice/generator"
	"brandvoice/store"
)

// Kind is the coarse failure class of an invocation.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindNotFound      Kind = "not_found"
	KindRemoteCall    Kind = "remote_call"
	KindExtraction    Kind = "extraction"
)

// Stage names the step of an invocation that failed.
type Stage string

const (
	StageConfig   Stage = "config"
	StageFetch    Stage = "fetch"
	StageResolve  Stage = "resolve"
	StageGenerate Stage = "generate"
	StageRender   Stage = "render"
	StageReview   Stage = "review"
	StageWrite    Stage = "write"
)

// ErrNoDraft means the record has nothing in its draft field.
var ErrNoDraft = errors.New("draft field is empty")

// ErrNoSourceRecord means the trigger record does not carry the id of the
// record it mirrors.
var ErrNoSourceRecord = errors.New("source record id is empty")

// Error is a terminal failure of one invocation. Nothing has been written
// when it is returned.
type Error struct {
	Kind     Kind
	Stage    Stage
	RecordID string
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Stage, e.Kind)
	if e.RecordID != "" {
		base += fmt.Sprintf(" (record=%s)", e.RecordID)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an invocation failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// ExitCode maps a failure to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindConfiguration:
		return 2
	case KindNotFound:
		return 3
	case KindRemoteCall:
		return 4
	case KindExtraction:
		return 5
	default:
		return 1
	}
}

func fail(stage Stage, recordID string, err error) *Error {
	return &Error{Kind: classify(stage, err), Stage: stage, RecordID: recordID, Err: err}
}

func classify(stage Stage, err error) Kind {
	switch {
	case config.IsConfigError(err):
		return KindConfiguration
	case stage == StageWrite:
		// A missing write target is still a failed write-back call.
		return KindRemoteCall
	case errors.Is(err, store.ErrRecordNotFound),
		errors.Is(err, ErrNoDraft),
		errors.Is(err, ErrNoSourceRecord):
		return KindNotFound
	case errors.Is(err, generator.ErrNoText), stage == StageRender:
		return KindExtraction
	default:
		return KindRemoteCall
	}
}

// ConfigError wraps a configuration or credential problem found before any
// remote call.
func ConfigError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindConfiguration, Stage: StageConfig, Err: err}
}
