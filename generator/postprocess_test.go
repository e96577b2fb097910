package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "flattened output_text",
			raw:  `{"output_text":"  Ahoy! We're live.  ","output":[]}`,
			want: "Ahoy! We're live.",
			ok:   true,
		},
		{
			name: "output_text fragments",
			raw:  `{"output_text":["Ahoy! ","We're live."]}`,
			want: "Ahoy! We're live.",
			ok:   true,
		},
		{
			name: "message after reasoning item",
			raw: `{"output":[
				{"type":"reasoning","summary":[]},
				{"type":"message","role":"assistant","content":[
					{"type":"refusal","refusal":"no"},
					{"type":"output_text","text":"\nAhoy! It's here.\n"}
				]}
			]}`,
			want: "Ahoy! It's here.",
			ok:   true,
		},
		{
			name: "empty output_text falls back to items",
			raw:  `{"output_text":"","output":[{"type":"message","content":[{"type":"output_text","text":"Hi"}]}]}`,
			want: "Hi",
			ok:   true,
		},
		{
			name: "message without text content",
			raw:  `{"output":[{"type":"message","content":[{"type":"refusal","refusal":"no"}]}]}`,
		},
		{
			name: "blank text",
			raw:  `{"output":[{"type":"message","content":[{"type":"output_text","text":"   "}]}]}`,
		},
		{
			name: "no message item",
			raw:  `{"output":[{"type":"reasoning"}]}`,
		},
		{
			name: "not json",
			raw:  `<html>bad gateway</html>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractText(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostProcess(t *testing.T) {
	d, err := PostProcess("\n  Ahoy! We're here.\n")
	require.NoError(t, err)
	assert.Equal(t, "Ahoy! We're here.", d.Text)

	_, err = PostProcess(" \n\t ")
	assert.ErrorIs(t, err, ErrNoText)
}

func TestDraftPreview(t *testing.T) {
	d := Draft{Text: "Ahoy! We're thrilled."}
	assert.Equal(t, d.Text, d.Preview(200))
	assert.Equal(t, "Ahoy!...", d.Preview(5))
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("Ahoy!\n\nWe're **thrilled**.")
	require.NoError(t, err)
	assert.Contains(t, html, "<p>Ahoy!</p>")
	assert.Contains(t, html, "<strong>thrilled</strong>")
}
