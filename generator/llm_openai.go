package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// OpenAILLM implements LLMClient using the official openai-go SDK (Responses API, no retries).
type OpenAILLM struct {
	Model string
	Opts  []option.RequestOption
}

func NewOpenAILLMFromConfig(cfg *LLMSettings) (*OpenAILLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, option.WithBaseURL(base))
	}
	return &OpenAILLM{Model: cfg.Model, Opts: opts}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.Opts...)

	params := responses.ResponseNewParams{
		Model:        shared.ResponsesModel(o.Model),
		Instructions: openai.String(prompt.Instructions),
		Input:        responses.ResponseNewParamsInputUnion{OfString: openai.String(prompt.Input)},
		Store:        openai.Bool(false),
	}
	if prompt.MaxOutputTokens > 0 {
		params.MaxOutputTokens = openai.Int(prompt.MaxOutputTokens)
	}

	// Keep the 2xx body raw so an empty or non-JSON answer reaches ExtractText.
	var raw []byte
	_, err := client.Responses.New(ctx, params, option.WithResponseBodyInto(&raw))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			body := apiErr.RawJSON()
			if body == "" {
				body = apiErr.Error()
			}
			return "", &APIError{Status: apiErr.StatusCode, Body: body}
		}
		return "", fmt.Errorf("openai responses: %w", err)
	}

	text, ok := ExtractText(string(raw))
	if !ok {
		return "", ErrNoText
	}
	return text, nil
}
