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

package opts

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/pagerc/pkg/config"
	"github.com/walteh/pagerc/pkg/log"
	"github.com/walteh/pagerc/pkg/pipeline"
	"github.com/walteh/pagerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// flags
	ConfigFile string
	Root       string
	Debug      bool

	// set up by Load
	Config  *config.Config
	Logger  *log.Logger
	Store   *status.Manager
	Console io.Writer
}

// Level is the structured log level selected by the debug flag. Without it
// only warnings reach stderr and the console lines carry the progress.
func (o *RootOpts) Level() zerolog.Level {
	if o.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// Load reads the config, applies flag overrides and prepares the logger and
// file store. Console output goes to stdout.
func (o *RootOpts) Load(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.LoadOrDefault(ctx, o.ConfigFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	if o.Root != "" {
		cfg.Root = o.Root
		if err := cfg.Validate(); err != nil {
			return errors.Errorf("validating root override: %w", err)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("config", cfg.Location()).
		Stringer("site", cfg).
		Msg("configuration loaded")

	o.Config = cfg
	o.Console = stdout
	o.Logger = log.New(stdout, o.Level())
	o.Store = status.New(cfg.Root, zerolog.Ctx(ctx))
	return nil
}

// Pipeline builds a pipeline over the loaded config.
func (o *RootOpts) Pipeline() (*pipeline.Pipeline, error) {
	if o.Config == nil {
		return nil, errors.Errorf("options not loaded")
	}
	p, err := pipeline.New(pipeline.Options{
		Config: o.Config,
		Store:  o.Store,
		Logger: o.Logger,
		Progress: func(done, total int) {
			fmt.Fprintf(o.Console, "  %s\n", o.Store.Progress(done, total))
		},
	})
	if err != nil {
		return nil, errors.Errorf("creating pipeline: %w", err)
	}
	return p, nil
}
