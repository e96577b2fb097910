package automation

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"brandvoice/config"
	"brandvoice/quality"
)

// ScoreResult describes one completed scoring invocation.
type ScoreResult struct {
	RecordID  string
	UpdatedID string
	Report    quality.Report
}

// Scorer applies the heuristic rubric to a stored draft and writes the
// report back onto the same record.
type Scorer struct {
	cfg    config.Config
	store  RecordStore
	logger *zap.Logger
}

func NewScorer(cfg config.Config, rs RecordStore, logger *zap.Logger) (*Scorer, error) {
	if rs == nil {
		return nil, errors.New("scorer needs a record store")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{cfg: cfg, store: rs, logger: logger}, nil
}

func (s *Scorer) Run(ctx context.Context, recordID string) (ScoreResult, error) {
	log := invocationLogger(s.logger, "score", recordID)
	f := s.cfg.Fields

	log.Info("fetching draft", zap.Stringer("table", s.cfg.Store.Target))
	rec, err := s.store.Get(ctx, table(s.cfg.Store.Target), recordID, f.Draft)
	if err != nil {
		log.Error("draft fetch failed", zap.Error(err))
		return ScoreResult{}, fail(StageFetch, recordID, err)
	}
	draft := rec.Fields[f.Draft]
	if strings.TrimSpace(draft) == "" {
		log.Warn("no draft content found", zap.String("field", f.Draft))
		return ScoreResult{}, fail(StageFetch, recordID, ErrNoDraft)
	}

	report := quality.Score(draft)
	log.Info("draft scored",
		zap.Int("chars", len(draft)),
		zap.Int("score", report.Score),
		zap.String("rating", quality.Rating(report.Score)),
		zap.Int("issues", len(report.Issues)),
		zap.Int("contractions", report.Metrics.Contractions),
		zap.Int("bullets", report.Metrics.Bullets),
		zap.Int("passive", report.Metrics.PassiveVoice),
		zap.Float64("paragraph_ratio", report.Flags.ParagraphRatio))

	updatedID, err := s.store.Update(ctx, table(s.cfg.Store.Target), recordID, ReportFields(f, report))
	if err != nil {
		log.Error("quality write-back failed", zap.Error(err))
		return ScoreResult{}, fail(StageWrite, recordID, err)
	}
	log.Info("quality metrics written", zap.String("updated", updatedID))
	return ScoreResult{RecordID: recordID, UpdatedID: updatedID, Report: report}, nil
}

// ReportFields maps a report onto the configured record fields.
func ReportFields(f config.Fields, r quality.Report) map[string]any {
	return map[string]any{
		f.QualityScore:   r.Score,
		f.QualityIssues:  r.Summary(),
		f.HasContraction: r.Flags.HasContractions,
		f.HasEmDashes:    r.Flags.HasEmDashes,
		f.HasProhibited:  r.Flags.HasProhibitedPhrases,
		f.ParagraphRatio: r.Flags.ParagraphRatio,
	}
}
