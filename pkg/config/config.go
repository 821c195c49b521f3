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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/pagerc/pkg/meta"
	"github.com/walteh/pagerc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// DefaultFile is read when no config path is given.
const DefaultFile = ".pagerc.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes data over a copy of the defaults
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Replacement is a site-wide string replacement applied to every article
type Replacement struct {
	Old  string  `json:"old" yaml:"old" hcl:"old"`                                  // Original string to replace
	New  string  `json:"new" yaml:"new" hcl:"new"`                                  // New string to use
	File *string `json:"file,omitempty" yaml:"file,omitempty" hcl:"file,optional"` // Optional glob of files to apply to
}

// 📚 Config represents the complete configuration
type Config struct {
	Root         string        `json:"root" yaml:"root" hcl:"root,optional"`
	ArticlesDir  string        `json:"articles_dir" yaml:"articles_dir" hcl:"articles_dir,optional"`
	Include      string        `json:"include" yaml:"include" hcl:"include,optional"`
	Exclude      []string      `json:"exclude" yaml:"exclude" hcl:"exclude,optional"`
	ArchiveHTML  string        `json:"archive_html" yaml:"archive_html" hcl:"archive_html,optional"`
	ArchiveJSON  string        `json:"archive_json" yaml:"archive_json" hcl:"archive_json,optional"`
	BaseURL      string        `json:"base_url" yaml:"base_url" hcl:"base_url,optional"`
	Brand        string        `json:"brand" yaml:"brand" hcl:"brand,optional"`
	BrandMaxLen  int           `json:"brand_max_len" yaml:"brand_max_len" hcl:"brand_max_len,optional"`
	Replacements []Replacement `json:"replacements" yaml:"replacements" hcl:"replacement,block"`

	location string
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Root:        ".",
		ArticlesDir: "articles",
		Include:     "*.html",
		Exclude:     []string{".gitkeep"},
		ArchiveHTML: "archive.html",
		ArchiveJSON: "archive.json",
		BaseURL:     meta.DefaultBaseURL,
		Brand:       meta.DefaultBrand,
		BrandMaxLen: meta.DefaultBrandMaxLen,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to the defaults when path is the
// default file and it does not exist. An explicitly named file must exist.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) && path == DefaultFile {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		cfg := Defaults()
		return cfg, cfg.Validate()
	}

	return Load(ctx, path)
}

// 🔍 Validate checks the configuration and normalizes paths in place
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = "."
	}

	required := []struct {
		key, value string
	}{
		{"articles_dir", cfg.ArticlesDir},
		{"include", cfg.Include},
		{"archive_html", cfg.ArchiveHTML},
		{"archive_json", cfg.ArchiveJSON},
		{"base_url", cfg.BaseURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Errorf("%s is required", r.key)
		}
	}

	if cfg.BrandMaxLen < 0 {
		return errors.Errorf("brand_max_len must not be negative")
	}

	if !doublestar.ValidatePattern(cfg.Include) {
		return errors.Errorf("invalid include pattern %q", cfg.Include)
	}
	for _, ex := range cfg.Exclude {
		if !doublestar.ValidatePattern(ex) {
			return errors.Errorf("invalid exclude pattern %q", ex)
		}
	}

	if err := text.NewSimpleTextReplacer().ValidateRules(cfg.ReplacementRules()); err != nil {
		return errors.Errorf("invalid replacements: %w", err)
	}

	// Clean up paths
	cfg.Root = filepath.Clean(cfg.Root)
	cfg.ArticlesDir = filepath.Clean(cfg.ArticlesDir)
	cfg.ArchiveHTML = filepath.Clean(cfg.ArchiveHTML)
	cfg.ArchiveJSON = filepath.Clean(cfg.ArchiveJSON)

	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}

	return nil
}

// ReplacementRules converts the configured replacements into text rules.
func (cfg *Config) ReplacementRules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(cfg.Replacements))
	for i, r := range cfg.Replacements {
		rule := text.ReplacementRule{
			Name:     fmt.Sprintf("replacement[%d]", i),
			FromText: r.Old,
			ToText:   r.New,
		}
		if r.File != nil {
			rule.FileFilterGlob = *r.File
		}
		rules = append(rules, rule)
	}
	return rules
}

// ArticlesPath is the articles directory joined onto the root.
func (cfg *Config) ArticlesPath() string {
	return filepath.Join(cfg.Root, cfg.ArticlesDir)
}

// Location is the file the config was loaded from, empty for defaults.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s/%s -> %s, %s", cfg.Root, cfg.ArticlesDir, cfg.ArchiveHTML, cfg.ArchiveJSON)
}
