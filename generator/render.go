package generator

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// RenderHTML 把 Markdown 初稿转成 HTML。
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
