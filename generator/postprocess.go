package generator

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrNoText 接口有响应但取不到文本。
var ErrNoText = errors.New("generation response contained no text")

// ExtractText 从 Responses 原始 JSON 取正文：优先 output_text，其次首个 message 的首个 output_text。
func ExtractText(raw string) (text string, ok bool) {
	if !gjson.Valid(raw) {
		return "", false
	}
	if t := strings.TrimSpace(flattenOutputText(gjson.Get(raw, "output_text"))); t != "" {
		return t, true
	}

	var message gjson.Result
	for _, item := range gjson.Get(raw, "output").Array() {
		if item.Get("type").String() == "message" {
			message = item
			break
		}
	}
	if !message.Exists() {
		return "", false
	}
	for _, part := range message.Get("content").Array() {
		if part.Get("type").String() == "output_text" {
			t := strings.TrimSpace(part.Get("text").String())
			return t, t != ""
		}
	}
	return "", false
}

// 部分网关把 output_text 拆成数组。
func flattenOutputText(v gjson.Result) string {
	if !v.IsArray() {
		if v.Type == gjson.String {
			return v.String()
		}
		return ""
	}
	var sb strings.Builder
	for _, part := range v.Array() {
		if part.Type == gjson.String {
			sb.WriteString(part.String())
		}
	}
	return sb.String()
}

// PostProcess 校验模型输出并生成 Draft。
func PostProcess(raw string) (Draft, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Draft{}, ErrNoText
	}
	return Draft{Text: text}, nil
}
