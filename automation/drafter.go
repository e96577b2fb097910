package automation

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"brandvoice/config"
	"brandvoice/generator"
)

// DraftResult describes one completed draft invocation.
type DraftResult struct {
	TriggerID string
	TargetID  string
	// UpdatedID is empty for previews.
	UpdatedID string
	Draft     generator.Draft
	HTML      string
}

// Drafter turns a trigger record into a draft stored on its target record.
type Drafter struct {
	cfg    config.Config
	store  RecordStore
	agent  DraftWriter
	logger *zap.Logger
}

func NewDrafter(cfg config.Config, rs RecordStore, agent DraftWriter, logger *zap.Logger) (*Drafter, error) {
	if rs == nil || agent == nil {
		return nil, errors.New("drafter needs a record store and a draft writer")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Drafter{cfg: cfg, store: rs, agent: agent, logger: logger}, nil
}

// Run reads the trigger record, generates a draft and writes it to the target
// record.
func (d *Drafter) Run(ctx context.Context, recordID string) (DraftResult, error) {
	return d.run(ctx, recordID, true)
}

// Preview does everything Run does except the write.
func (d *Drafter) Preview(ctx context.Context, recordID string) (DraftResult, error) {
	return d.run(ctx, recordID, false)
}

func (d *Drafter) run(ctx context.Context, recordID string, write bool) (DraftResult, error) {
	log := invocationLogger(d.logger, "draft", recordID)
	f := d.cfg.Fields

	fields := []string{f.Title, f.Notes}
	if f.SourceRecordID != "" {
		fields = append(fields, f.SourceRecordID)
	}
	log.Info("fetching trigger record", zap.Stringer("table", d.cfg.Store.Trigger))
	rec, err := d.store.Get(ctx, table(d.cfg.Store.Trigger), recordID, fields...)
	if err != nil {
		log.Error("trigger record fetch failed", zap.Error(err))
		return DraftResult{}, fail(StageFetch, recordID, err)
	}

	targetID := recordID
	if f.SourceRecordID != "" {
		targetID = strings.TrimSpace(rec.Fields[f.SourceRecordID])
		if targetID == "" {
			log.Error("trigger record has no source record id", zap.String("field", f.SourceRecordID))
			return DraftResult{}, fail(StageResolve, recordID, ErrNoSourceRecord)
		}
	}
	log = log.With(zap.String("target", targetID))

	req := generator.Request{Title: rec.Fields[f.Title], Notes: rec.Fields[f.Notes]}
	log.Info("generating draft",
		zap.String("style", d.cfg.Generation.Style),
		zap.String("model", d.cfg.Generation.DraftModel),
		zap.String("style_guide", generator.StyleGuideVersion))
	draft, err := d.agent.Draft(ctx, req)
	if err != nil {
		log.Error("draft generation failed", zap.Error(err))
		return DraftResult{}, fail(StageGenerate, recordID, err)
	}
	log.Info("draft generated", zap.Int("chars", len(draft.Text)), zap.String("preview", draft.Preview(200)))

	res := DraftResult{TriggerID: recordID, TargetID: targetID, Draft: draft}
	update := map[string]any{f.Draft: draft.Text}
	if f.DraftHTML != "" {
		html, err := generator.RenderHTML(draft.Text)
		if err != nil {
			log.Error("draft rendering failed", zap.Error(err))
			return DraftResult{}, fail(StageRender, recordID, err)
		}
		res.HTML = html
		update[f.DraftHTML] = html
	}
	if !write {
		log.Info("preview only, nothing written")
		return res, nil
	}

	updatedID, err := d.store.Update(ctx, table(d.cfg.Store.Target), targetID, update)
	if err != nil {
		log.Error("draft write-back failed",
			zap.Stringer("table", d.cfg.Store.Target),
			zap.String("field", f.Draft),
			zap.Error(err))
		return DraftResult{}, fail(StageWrite, recordID, err)
	}
	res.UpdatedID = updatedID
	log.Info("draft written", zap.String("updated", updatedID))
	return res, nil
}
