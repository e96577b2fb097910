// Package automation runs the record-triggered invocations: drafting a
// communication, scoring a draft with the heuristic rubric and asking the model
// to review a draft. Each run reads one record, does its work and writes back
// at most once.
package automation

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brandvoice/config"
	"brandvoice/generator"
	"brandvoice/store"
)

// RecordStore is the slice of the record store the invocations use.
type RecordStore interface {
	Get(ctx context.Context, t store.Table, recordID string, fields ...string) (store.Record, error)
	Update(ctx context.Context, t store.Table, recordID string, fields map[string]any) (string, error)
}

// DraftWriter produces a draft from request fields.
type DraftWriter interface {
	Draft(ctx context.Context, req generator.Request) (generator.Draft, error)
}

// DraftReviewer returns a model's free-text judgment of a draft.
type DraftReviewer interface {
	Review(ctx context.Context, draft string) (string, error)
}

func table(t config.Table) store.Table {
	return store.Table{BaseID: t.BaseID, Name: t.Name}
}

func invocationLogger(logger *zap.Logger, job, recordID string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.With(
		zap.String("job", job),
		zap.String("invocation", uuid.NewString()),
		zap.String("record", recordID),
	)
}
