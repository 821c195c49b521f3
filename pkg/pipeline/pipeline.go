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

package pipeline

import (
	"context"
	"io"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/pagerc/pkg/archive"
	"github.com/walteh/pagerc/pkg/config"
	"github.com/walteh/pagerc/pkg/log"
	"github.com/walteh/pagerc/pkg/meta"
	"github.com/walteh/pagerc/pkg/nav"
	"github.com/walteh/pagerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// Store is the file access the pipeline needs, rooted at the site root.
type Store interface {
	status.FileManager
	status.StatusReporter
}

// 🔧 Options contains configuration for the pipeline
type Options struct {
	// Config is the pagerc configuration
	Config *config.Config
	// Store reads and writes site files; defaults to a status.Manager at Config.Root
	Store Store
	// Logger prints progress; defaults to a silent logger
	Logger *log.Logger
	// Fragment overrides the nav fragment injected into pages
	Fragment *nav.Fragment
	// Progress is called after each article a Run has processed
	Progress func(done, total int)
}

// 🎮 Pipeline rewrites articles and rebuilds the archive
type Pipeline struct {
	cfg       *config.Config
	store     Store
	logger    *log.Logger
	rewriter  *nav.Rewriter
	extractor *meta.Extractor
	builder   *archive.Builder
	progress  func(done, total int)
}

// 🏭 New creates a new pipeline with the given options
func New(opts Options) (*Pipeline, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	cfg := opts.Config

	store := opts.Store
	if store == nil {
		store = status.New(cfg.Root, nil)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, zerolog.Disabled)
	}

	frag := nav.Current()
	if opts.Fragment != nil {
		frag = *opts.Fragment
	}

	extractor := meta.NewExtractor()
	extractor.BaseURL = cfg.BaseURL
	extractor.Brand = cfg.Brand
	extractor.BrandMaxLen = cfg.BrandMaxLen

	return &Pipeline{
		cfg:       cfg,
		store:     store,
		logger:    logger,
		rewriter:  nav.NewRewriter(nav.WithFragment(frag), nav.WithReplacements(cfg.ReplacementRules()...)),
		extractor: extractor,
		builder:   archive.NewBuilder(frag),
		progress:  opts.Progress,
	}, nil
}

// Enumerate lists the article files to process, sorted by name.
func (p *Pipeline) Enumerate(ctx context.Context) ([]string, error) {
	names, err := p.store.ListDir(ctx, p.cfg.ArticlesDir)
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", p.cfg.ArticlesDir, err)
	}

	files := make([]string, 0, len(names))
	for _, name := range names {
		ok, err := p.selected(name)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, name)
		}
	}
	slices.Sort(files)

	zerolog.Ctx(ctx).Debug().Strs("files", files).Str("dir", p.cfg.ArticlesDir).Msg("enumerated articles")
	return files, nil
}

func (p *Pipeline) selected(name string) (bool, error) {
	ok, err := doublestar.Match(p.cfg.Include, name)
	if err != nil {
		return false, errors.Errorf("matching include pattern: %w", err)
	}
	if !ok {
		return false, nil
	}
	for _, ex := range p.cfg.Exclude {
		skip, err := doublestar.Match(ex, name)
		if err != nil {
			return false, errors.Errorf("matching exclude pattern: %w", err)
		}
		if skip {
			return false, nil
		}
	}
	return true, nil
}

// Run rewrites every article in place and rebuilds both archive artifacts.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	return p.execute(ctx, true)
}

// Check computes what Run would do without touching any file.
func (p *Pipeline) Check(ctx context.Context) (*Report, error) {
	return p.execute(ctx, false)
}

func (p *Pipeline) execute(ctx context.Context, write bool) (*Report, error) {
	files, err := p.Enumerate(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{DryRun: !write}
	if len(files) == 0 {
		if write {
			p.logger.Info("No article files found, nothing to do")
		}
		return report, nil
	}

	if write {
		p.logger.StartRun(ctx, log.RunOperation{Root: p.cfg.Root, ArticlesDir: p.cfg.ArticlesDir, Files: len(files)})
		defer p.logger.EndRun(ctx)
	}

	records := make([]meta.Record, 0, len(files))
	for i, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("processing articles: %w", err)
		}

		page, err := p.processPage(ctx, name, write)
		if err != nil {
			return nil, err
		}
		report.Pages = append(report.Pages, *page)
		records = append(records, page.Record)

		if write && p.progress != nil {
			p.progress(i+1, len(files))
		}
	}

	artifacts, err := p.builder.Build(records)
	if err != nil {
		return nil, errors.Errorf("building archive: %w", err)
	}
	report.Records = artifacts.Records

	if write {
		p.logger.LogNewline()
	}
	for _, a := range []struct {
		path    string
		content []byte
	}{
		{p.cfg.ArchiveHTML, artifacts.HTML},
		{p.cfg.ArchiveJSON, artifacts.Feed},
	} {
		res, err := p.processArtifact(ctx, a.path, a.content, write)
		if err != nil {
			return nil, err
		}
		report.Artifacts = append(report.Artifacts, *res)
		if write {
			p.logger.LogArtifact(ctx, a.path, len(artifacts.Records))
		}
	}

	return report, nil
}

func (p *Pipeline) processPage(ctx context.Context, name string, write bool) (*PageResult, error) {
	path := filepath.Join(p.cfg.ArticlesDir, name)

	original, err := p.store.ReadFile(ctx, path)
	if err != nil {
		return nil, errors.Errorf("reading article %s: %w", name, err)
	}

	if write {
		p.logger.Processing(name)
	}

	res, err := p.rewriter.ApplyFile(ctx, name, string(original))
	if err != nil {
		return nil, errors.Errorf("rewriting article %s: %w", name, err)
	}
	content := []byte(res.Content)

	st, err := p.store.Compare(ctx, path, content)
	if err != nil {
		return nil, errors.Errorf("comparing article %s: %w", name, err)
	}

	// metadata comes from the page as it ends up on disk
	onDisk := res.Content
	if write {
		if st.Changed() {
			if err := p.store.WriteFile(ctx, path, content); err != nil {
				return nil, errors.Errorf("writing article %s: %w", name, err)
			}
		}
		reread, err := p.store.ReadFile(ctx, path)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Str("file", name).Msg("re-reading article, using filename only")
			onDisk = ""
		} else {
			onDisk = string(reread)
		}
	}

	rec := p.extractor.Extract(name, onDisk)

	p.store.TrackFile(ctx, path, status.FileInfo{
		Kind:     KindArticle,
		Status:   st,
		Size:     int64(len(content)),
		Checksum: status.Checksum(content),
	})

	if write {
		p.logger.LogPage(ctx, log.PageOperation{
			Path:       name,
			Status:     st.String(),
			Replaced:   res.Replaced(),
			Detected:   res.Detected,
			Removed:    res.Removed,
			Normalized: res.Normalized,
			Date:       rec.DisplayDate,
			Headline:   rec.Headline,
		})
	}

	return &PageResult{
		Name:       name,
		Path:       path,
		Status:     st,
		Replaced:   res.Replaced(),
		Detected:   res.Detected,
		Removed:    res.Removed,
		Normalized: res.Normalized,
		Record:     rec,
		Original:   string(original),
		Content:    res.Content,
	}, nil
}

func (p *Pipeline) processArtifact(ctx context.Context, path string, content []byte, write bool) (*ArtifactResult, error) {
	st, err := p.store.Compare(ctx, path, content)
	if err != nil {
		return nil, errors.Errorf("comparing %s: %w", path, err)
	}

	var original []byte
	if st == status.StatusModified {
		if original, err = p.store.ReadFile(ctx, path); err != nil {
			return nil, errors.Errorf("reading %s: %w", path, err)
		}
	}

	// artifacts are written on every run
	if write {
		if err := p.store.WriteFile(ctx, path, content); err != nil {
			return nil, errors.Errorf("writing %s: %w", path, err)
		}
	}

	p.store.TrackFile(ctx, path, status.FileInfo{
		Kind:     KindArchive,
		Status:   st,
		Size:     int64(len(content)),
		Checksum: status.Checksum(content),
	})

	return &ArtifactResult{
		Path:     path,
		Status:   st,
		Original: string(original),
		Content:  string(content),
	}, nil
}

// Feed reads the archive feed currently on disk.
func (p *Pipeline) Feed(ctx context.Context) ([]archive.FeedEntry, error) {
	ok, err := p.store.FileExists(ctx, p.cfg.ArchiveJSON)
	if err != nil {
		return nil, errors.Errorf("checking feed: %w", err)
	}
	if !ok {
		return nil, errors.Errorf("no feed at %s, run pagerc build first", p.cfg.ArchiveJSON)
	}

	data, err := p.store.ReadFile(ctx, p.cfg.ArchiveJSON)
	if err != nil {
		return nil, errors.Errorf("reading feed: %w", err)
	}
	return archive.ParseFeed(data)
}
