package generator

import (
	"fmt"
	"strings"
)

// Placeholder 标题或备注缺失时的占位。
const Placeholder = "Not specified"

// compact 模式的输出上限。
const compactMaxOutputTokens = 1000

// Prompt 表示发送给 LLM 的一次请求。
type Prompt struct {
	Instructions    string
	Input           string
	MaxOutputTokens int64
}

// BuildDraftPrompt 生成初稿提示词，未知 style 按 full 处理。
func BuildDraftPrompt(style string, req Request) Prompt {
	title := orPlaceholder(req.Title)
	notes := orPlaceholder(req.Notes)

	if style == "compact" {
		return Prompt{
			Instructions:    CompactStyleGuide,
			Input:           fmt.Sprintf("Write a first draft for:\n\nProject: %s\nNotes: %s\n\nApply all Twilio Brand Voice guidelines.", title, notes),
			MaxOutputTokens: compactMaxOutputTokens,
		}
	}

	var sb strings.Builder
	sb.WriteString("Please write a first draft for the following communication:\n\n")
	fmt.Fprintf(&sb, "Project Name: %s\n\n", title)
	fmt.Fprintf(&sb, "Notes/Key Points:\n%s\n\n", notes)
	sb.WriteString("Write the full communication draft now, applying all Twilio Brand Voice guidelines.")
	return Prompt{
		Instructions: FullStyleGuide,
		Input:        sb.String(),
	}
}

// BuildReviewPrompt 生成评审提示词。
func BuildReviewPrompt(draft string) Prompt {
	var sb strings.Builder
	sb.WriteString("Analyze this Twilio communication draft for brand voice compliance.\n\n")
	sb.WriteString("CHECK FOR:\n")
	sb.WriteString("- Narrative paragraphs (not bullet lists)\n")
	sb.WriteString("- Contractions (we're, you'll, don't)\n")
	sb.WriteString("- No em dashes (—), no semicolons\n")
	sb.WriteString("- No \"easy/quick/just/simply\"\n")
	sb.WriteString("- Warm, conversational tone\n")
	sb.WriteString("- Starts with \"Ahoy!\" or direct (for serious topics)\n\n")
	fmt.Fprintf(&sb, "DRAFT:\n%s\n\n", draft)
	sb.WriteString("PROVIDE:\n")
	sb.WriteString("1. Score (0-100)\n")
	sb.WriteString("2. Top 2 strengths\n")
	sb.WriteString("3. Top 2 issues (if any)\n")
	sb.WriteString("4. 1-2 quick fixes\n\n")
	sb.WriteString("Be brief and specific.")
	return Prompt{
		Instructions: ReviewerInstructions,
		Input:        sb.String(),
	}
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return Placeholder
	}
	return v
}
