package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantValue  string
		wantParams map[string]string
	}{
		{
			name:       "content type with charset",
			header:     "application/json; charset=UTF-8",
			wantValue:  "application/json",
			wantParams: map[string]string{"charset": "UTF-8"},
		},
		{
			name:       "quoted filename",
			header:     `attachment; filename="report.csv"`,
			wantValue:  "attachment",
			wantParams: map[string]string{"filename": "report.csv"},
		},
		{
			name:       "upper case type and stray parameter",
			header:     "Text/XML;something",
			wantValue:  "text/xml",
			wantParams: map[string]string{},
		},
		{
			name:       "empty",
			header:     "",
			wantValue:  "",
			wantParams: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, params := parseHeader(tt.header)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}

func TestExportedHeaderParsers(t *testing.T) {
	mime, _ := ParseContentTypeHeader("application/xml")
	assert.Equal(t, "application/xml", mime)

	kind, params := ParseContentDisposition(`inline; filename=icon.png`)
	assert.Equal(t, "inline", kind)
	assert.Equal(t, "icon.png", params["filename"])
}
