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

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestJSONParsing tests JSON config parsing
func TestJSONParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:   "valid_minimal_json",
			config: `{"articles_dir": "posts"}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "posts", cfg.ArticlesDir)
				assert.Equal(t, "archive.html", cfg.ArchiveHTML) // default value
				assert.Nil(t, cfg.Replacements)
			},
		},
		{
			name: "valid_full_json",
			config: `{
				"root": "site",
				"articles_dir": "articles",
				"include": "*.htm*",
				"exclude": [],
				"archive_html": "index.html",
				"archive_json": "feed.json",
				"base_url": "https://example.com/a/",
				"brand": "Gazette",
				"brand_max_len": 15,
				"replacements": [
					{"old": "foo", "new": "bar", "file": "*.html"}
				]
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "site", cfg.Root)
				assert.Equal(t, "*.htm*", cfg.Include)
				assert.Empty(t, cfg.Exclude)
				assert.Equal(t, "index.html", cfg.ArchiveHTML)
				assert.Equal(t, "feed.json", cfg.ArchiveJSON)
				assert.Equal(t, "Gazette", cfg.Brand)
				assert.Equal(t, 15, cfg.BrandMaxLen)
				require.Len(t, cfg.Replacements, 1)
				require.NotNil(t, cfg.Replacements[0].File)
				assert.Equal(t, "*.html", *cfg.Replacements[0].File)
			},
		},
		{
			name:        "unknown_field",
			config:      `{"destination": "/tmp"}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "wrong_type",
			config:      `{"brand_max_len": "twenty"}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "invalid_json",
			config:      `{"root": `,
			wantErr:     true,
			errContains: "parsing JSON",
		},
	}

	parser := &JSONParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(ctx, []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
