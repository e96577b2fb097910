package generator

import (
	"context"
	"errors"
	"strings"
)

// Agent 负责生成初稿并请模型评审。
type Agent struct {
	drafts          LLMClient
	reviews         LLMClient
	style           string
	maxOutputTokens int64
}

// AgentOption 构造 Agent 时的可选项。
type AgentOption func(*Agent)

// WithStyle 选择 full 或 compact 提示词。
func WithStyle(style string) AgentOption {
	return func(a *Agent) { a.style = style }
}

// WithMaxOutputTokens 覆盖初稿输出上限。
func WithMaxOutputTokens(n int64) AgentOption {
	return func(a *Agent) { a.maxOutputTokens = n }
}

// NewAgent 组装生成与评审客户端（通常只是模型不同）。
func NewAgent(drafts, reviews LLMClient, opts ...AgentOption) (*Agent, error) {
	if drafts == nil || reviews == nil {
		return nil, errors.New("llm client is required")
	}
	a := &Agent{drafts: drafts, reviews: reviews, style: "full"}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// DraftPrompt 返回 Draft 将发送的提示词。
func (a *Agent) DraftPrompt(req Request) Prompt {
	p := BuildDraftPrompt(a.style, req)
	if a.maxOutputTokens > 0 {
		p.MaxOutputTokens = a.maxOutputTokens
	}
	return p
}

// Draft 单次调用生成初稿。
func (a *Agent) Draft(ctx context.Context, req Request) (Draft, error) {
	raw, err := a.drafts.Complete(ctx, a.DraftPrompt(req))
	if err != nil {
		return Draft{}, err
	}
	return PostProcess(raw)
}

// Review 原样返回模型的评审文本。
func (a *Agent) Review(ctx context.Context, draft string) (string, error) {
	raw, err := a.reviews.Complete(ctx, BuildReviewPrompt(draft))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(raw) == "" {
		return "", ErrNoText
	}
	return strings.TrimSpace(raw), nil
}
