package text

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTextReplacer_ReplaceText(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		rules        []ReplacementRule
		want         string
		wantCount    int
		wantModified bool
	}{
		{
			name:    "simple_replacement",
			content: "Hello World",
			rules: []ReplacementRule{
				{FromText: "World", ToText: "Universe"},
			},
			want:         "Hello Universe",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "multiple_replacements",
			content: "Hello World World",
			rules: []ReplacementRule{
				{FromText: "World", ToText: "Universe"},
			},
			want:         "Hello Universe Universe",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "literal_limit",
			content: "a a a",
			rules: []ReplacementRule{
				{FromText: "a", ToText: "b", Limit: 1},
			},
			want:         "b a a",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "pattern_all",
			content: "<p>one</p>\n<p>two</p>\n",
			rules: []ReplacementRule{
				{Pattern: regexp.MustCompile(`<p>.*?</p>\s*`)},
			},
			want:         "",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "pattern_first_only_with_groups",
			content: `<body style="x"><body style="y">`,
			rules: []ReplacementRule{
				{Pattern: regexp.MustCompile(`(<body\b[^>]*?)style="[^"]*"`), ToText: `${1}style="z"`, Limit: 1},
			},
			want:         `<body style="z"><body style="y">`,
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "rules_apply_in_order",
			content: "Hello World",
			rules: []ReplacementRule{
				{FromText: "Hello", ToText: "Hi"},
				{Pattern: regexp.MustCompile(`Hi (\w+)`), ToText: "$1!"},
			},
			want:         "World!",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "no_match",
			content: "Hello World",
			rules: []ReplacementRule{
				{FromText: "Goodbye", ToText: "Hi"},
				{Pattern: regexp.MustCompile(`zzz`)},
			},
			want:         "Hello World",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "empty_content",
			content:      "",
			rules:        []ReplacementRule{{FromText: "World", ToText: "Universe"}},
			want:         "",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "empty_rules",
			content:      "Hello World",
			rules:        []ReplacementRule{},
			want:         "Hello World",
			wantCount:    0,
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewSimpleTextReplacer()
			result, err := replacer.ReplaceText(context.Background(), strings.NewReader(tt.content), tt.rules)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestSimpleTextReplacer_ReplaceTextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimpleTextReplacer().ReplaceText(ctx, strings.NewReader("Hello"), []ReplacementRule{{FromText: "Hello", ToText: "Bye"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimpleTextReplacer_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []ReplacementRule
		wantError string
	}{
		{
			name: "valid_rules",
			rules: []ReplacementRule{
				{FromText: "foo", ToText: "bar", FileFilterGlob: "*.html"},
				{Pattern: regexp.MustCompile(`a+`), ToText: "a"},
			},
		},
		{
			name:      "missing_from_text",
			rules:     []ReplacementRule{{ToText: "bar"}},
			wantError: "from_text is required",
		},
		{
			name:      "not_idempotent",
			rules:     []ReplacementRule{{FromText: "foo", ToText: "foobar"}},
			wantError: "to_text must not contain from_text",
		},
		{
			name:      "negative_limit",
			rules:     []ReplacementRule{{FromText: "foo", Limit: -1}},
			wantError: "limit must not be negative",
		},
		{
			name:      "bad_glob",
			rules:     []ReplacementRule{{FromText: "foo", FileFilterGlob: "[a-"}},
			wantError: "invalid file_filter_glob",
		},
		{
			name:  "empty_rules",
			rules: []ReplacementRule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSimpleTextReplacer().ValidateRules(tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestReplacementRule_AppliesTo(t *testing.T) {
	tests := []struct {
		name string
		glob string
		file string
		want bool
	}{
		{name: "empty_glob", glob: "", file: "01.02.26-a.html", want: true},
		{name: "matching_glob", glob: "*.26-*.html", file: "01.02.26-a.html", want: true},
		{name: "non_matching_glob", glob: "*.25-*.html", file: "01.02.26-a.html", want: false},
		{name: "brace_glob", glob: "{notes,about}.html", file: "notes.html", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := ReplacementRule{FromText: "x", FileFilterGlob: tt.glob}
			assert.Equal(t, tt.want, rule.AppliesTo(tt.file))
		})
	}
}
