// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "01.01.26-a.html",
					Type:         "article",
					Status:       "new",
					IsNew:        true,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				"✓ 01.01.26-a.html                     article    new",
			},
		},
		{
			name: "log_fresh_page",
			op: func(t *testing.T, logger *Logger) {
				logger.Processing("05.03.26-big-news-story.html")
				logger.LogPage(context.Background(), PageOperation{
					Path:     "05.03.26-big-news-story.html",
					Status:   "modified",
					Date:     "5 Mar 2026",
					Headline: "Big News Story",
				})
			},
			wantLogs: []string{
				"Processing: 05.03.26-big-news-story.html",
				"Nav: injected",
				"Meta: 5 Mar 2026 · Big News Story",
			},
		},
		{
			name: "log_refreshed_page_truncates_headline",
			op: func(t *testing.T, logger *Logger) {
				logger.LogPage(context.Background(), PageOperation{
					Path:     "notes.html",
					Status:   "unchanged",
					Replaced: true,
					Detected: []string{"nav-id"},
					Headline: strings.Repeat("é", 70),
				})
			},
			wantLogs: []string{
				"Nav: replaced",
				"Meta:  · " + strings.Repeat("é", 60),
			},
		},
		{
			name: "log_run",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Root:        "/srv/site",
					ArticlesDir: "articles",
					Files:       3,
				})
				logger.LogArtifact(context.Background(), "archive.html", 3)
				logger.EndRun(context.Background())
			},
			wantLogs: []string{
				"[processing articles]",
				"◆ /srv/site • 3 files",
				"archive.html rebuilt - 3 articles",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("rebuilding articles")
			},
			wantLogs: []string{
				"pagerc • rebuilding articles",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.InfoLevel)

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileOperationFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "new_article",
			op: FileOperation{
				Path:   "01.01.26-a.html",
				Type:   "article",
				Status: "new",
				IsNew:  true,
			},
			want: "✓ 01.01.26-a.html                     article    new",
		},
		{
			name: "modified_archive",
			op: FileOperation{
				Path:       "archive.html",
				Type:       "archive",
				Status:     "modified",
				IsModified: true,
			},
			want: "⟳ archive.html                        archive    modified",
		},
		{
			name: "unchanged_article",
			op: FileOperation{
				Path:   "notes.html",
				Type:   "article",
				Status: "unchanged",
			},
			want: "• notes.html                          article    unchanged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			logger.LogFileOperation(context.Background(), tt.op)

			output := strings.TrimSpace(buf.String())
			assert.Equal(t, tt.want, output, "formatted output should match")
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "ünï", truncate("ünïcode", 3))
}
