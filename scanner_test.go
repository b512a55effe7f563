package cssprune

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanBuckets(t *testing.T) {
	files := []FileContent{
		{Path: "styles/app.css", Content: ".header { }\n.footer { }"},
		{Path: "styles/extra.scss", Content: ".footer { }"},
		{Path: "src/index.ts", Content: `el.className = "header";`},
	}

	tests := []struct {
		name       string
		word       string
		cssFiles   []string
		otherFiles []string
		cssOnly    bool
	}{
		{
			name:       "word in both buckets",
			word:       "header",
			cssFiles:   []string{"styles/app.css"},
			otherFiles: []string{"src/index.ts"},
			cssOnly:    false,
		},
		{
			name:       "word only in stylesheets",
			word:       "footer",
			cssFiles:   []string{"styles/app.css", "styles/extra.scss"},
			otherFiles: []string{},
			cssOnly:    true,
		},
		{
			name:       "word not found anywhere",
			word:       "sidebar",
			cssFiles:   []string{},
			otherFiles: []string{},
			cssOnly:    false,
		},
	}

	s := NewUsageScanner(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.Scan(tt.word, files)
			assert.Equal(t, tt.cssFiles, result.CSSFiles)
			assert.Equal(t, tt.otherFiles, result.OtherFiles)
			assert.Equal(t, tt.cssOnly, result.IsCSSOnly)
			assert.Equal(t, len(tt.cssFiles)+len(tt.otherFiles) > 0, result.Found())
		})
	}
}

func TestScanWordBoundaries(t *testing.T) {
	s := NewUsageScanner(nil)

	files := []FileContent{
		{Path: "app.css", Content: ".btn-primary { }"},
	}
	// "btn" never appears as a standalone token.
	result := s.Scan("btn", files)
	assert.False(t, result.Found())

	result = s.Scan("btn-primary", files)
	assert.Equal(t, []string{"app.css"}, result.CSSFiles)
}

func TestScanSubstringFallback(t *testing.T) {
	s := NewUsageScanner(nil)

	files := []FileContent{
		{Path: "src/app.ts", Content: `selector = ".btn:hover";`},
	}
	// The colon puts the word outside the identifier alphabet, so containment
	// applies instead of token matching.
	result := s.Scan("btn:hover", files)
	assert.Equal(t, []string{"src/app.ts"}, result.OtherFiles)
	assert.False(t, result.IsCSSOnly)
}

func TestScanCustomCSSExtensions(t *testing.T) {
	rules := DefaultRules()
	rules.CSSExtensions = []string{"less"}
	s := NewUsageScanner(&rules)

	files := []FileContent{
		{Path: "theme.less", Content: ".accent { }"},
	}
	result := s.Scan("accent", files)
	assert.Equal(t, []string{"theme.less"}, result.CSSFiles)
	assert.True(t, result.IsCSSOnly)
}
