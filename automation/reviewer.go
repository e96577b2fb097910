package automation

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"brandvoice/config"
)

// ReviewResult carries the model's judgment verbatim.
type ReviewResult struct {
	RecordID  string
	UpdatedID string
	Analysis  string
}

// Reviewer delegates the rubric to the generation endpoint. The answer is
// free text with no determinism guarantee.
type Reviewer struct {
	cfg    config.Config
	store  RecordStore
	agent  DraftReviewer
	logger *zap.Logger
}

func NewReviewer(cfg config.Config, rs RecordStore, agent DraftReviewer, logger *zap.Logger) (*Reviewer, error) {
	if rs == nil || agent == nil {
		return nil, errors.New("reviewer needs a record store and a reviewer")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reviewer{cfg: cfg, store: rs, agent: agent, logger: logger}, nil
}

// Run reviews the draft on the trigger record. The analysis is written to the
// quality notes field only when one is configured.
func (r *Reviewer) Run(ctx context.Context, recordID string) (ReviewResult, error) {
	log := invocationLogger(r.logger, "review", recordID)
	f := r.cfg.Fields

	rec, err := r.store.Get(ctx, table(r.cfg.Store.Trigger), recordID, f.Draft)
	if err != nil {
		log.Error("draft fetch failed", zap.Error(err))
		return ReviewResult{}, fail(StageFetch, recordID, err)
	}
	draft := rec.Fields[f.Draft]
	if strings.TrimSpace(draft) == "" {
		log.Warn("no draft content found", zap.String("field", f.Draft))
		return ReviewResult{}, fail(StageFetch, recordID, ErrNoDraft)
	}

	log.Info("requesting review", zap.String("model", r.cfg.Generation.ReviewModel), zap.Int("chars", len(draft)))
	analysis, err := r.agent.Review(ctx, draft)
	if err != nil {
		log.Error("review failed", zap.Error(err))
		return ReviewResult{}, fail(StageReview, recordID, err)
	}
	log.Info("review received", zap.String("analysis", analysis))

	res := ReviewResult{RecordID: recordID, Analysis: analysis}
	if f.QualityNotes == "" {
		return res, nil
	}
	updatedID, err := r.store.Update(ctx, table(r.cfg.Store.Trigger), recordID, map[string]any{f.QualityNotes: analysis})
	if err != nil {
		log.Error("review write-back failed", zap.Error(err))
		return ReviewResult{}, fail(StageWrite, recordID, err)
	}
	res.UpdatedID = updatedID
	log.Info("review written", zap.String("field", f.QualityNotes), zap.String("updated", updatedID))
	return res, nil
}
