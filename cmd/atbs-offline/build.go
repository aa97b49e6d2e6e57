package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
	"github.com/Fawaz-I/automate-the-boring-stuff/bundle"
	"github.com/Fawaz-I/automate-the-boring-stuff/fs"
	"github.com/Fawaz-I/automate-the-boring-stuff/goquery"
	atbshttp "github.com/Fawaz-I/automate-the-boring-stuff/http"
	"github.com/Fawaz-I/automate-the-boring-stuff/mirror"
	atbsslog "github.com/Fawaz-I/automate-the-boring-stuff/slog"
	"github.com/Fawaz-I/automate-the-boring-stuff/yaml"
	"github.com/google/uuid"
)

// Dependencies holds the collaborators of one run.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config  *atbs.Config
	Fetcher atbs.Fetcher
	Files   atbs.FileSystem
	Logger  *slog.Logger

	// Exercises is the scaffold root. Set by Wire.
	Exercises atbs.FileSystem
}

// retryBackoff is the first retry delay; each further retry doubles it up
// to maxRetryDelay.
const (
	retryBackoff  = time.Second
	maxRetryDelay = time.Minute
	maxRetries    = 10
)

// Wire fills in the collaborators that deps does not already carry.
func (c *CLI) Wire(deps *Dependencies) error {
	if c.Retries < 0 || c.Retries > maxRetries {
		return atbs.Errorf(atbs.EINVALID, "--retries must be between 0 and %d, got %d", maxRetries, c.Retries)
	}
	if c.Rate < 0 {
		return atbs.Errorf(atbs.EINVALID, "--rate must not be negative, got %g", c.Rate)
	}

	if deps.Config == nil {
		cfg := atbs.DefaultConfig()
		if c.Config != "" {
			var err error
			if cfg, err = yaml.Load(c.Config); err != nil {
				return err
			}
		}
		deps.Config = cfg
	}

	if deps.Logger == nil {
		level := slog.LevelWarn
		if c.Debug {
			level = slog.LevelDebug
		}
		deps.Logger = slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level})).
			With("run", uuid.NewString())
	}

	if deps.Fetcher == nil {
		opts := []atbshttp.Option{
			atbshttp.WithTimeout(c.Timeout),
			atbshttp.WithScope(deps.Config.Scope()),
			atbshttp.WithRetryDelays(backoff(c.Retries)...),
		}
		if c.Rate > 0 {
			opts = append(opts, atbshttp.WithLimiter(atbshttp.NewDomainLimiter(c.Rate)))
		}
		deps.Fetcher = atbshttp.NewFetcher(opts...)
	}
	if deps.Files == nil {
		deps.Files = fs.NewDir(c.Output)
	}
	if deps.Exercises == nil {
		deps.Exercises = fs.NewDir(c.Exercises)
	}

	if c.Debug {
		deps.Fetcher = atbsslog.NewLoggingFetcher(deps.Fetcher, deps.Logger)
		deps.Files = atbsslog.NewLoggingFileSystem(deps.Files, deps.Logger)
		deps.Exercises = atbsslog.NewLoggingFileSystem(deps.Exercises, deps.Logger)
	}
	return nil
}

// backoff returns n exponentially growing retry delays.
func backoff(n int) []time.Duration {
	delays := make([]time.Duration, 0, n)
	delay := retryBackoff
	for i := 0; i < n; i++ {
		delays = append(delays, delay)
		delay = min(delay*2, maxRetryDelay)
	}
	return delays
}

// Run builds the bundle.
func (c *CLI) Run(deps *Dependencies) error {
	cfg := deps.Config
	pages := cfg.Pages()

	m := mirror.New(deps.Fetcher, deps.Files, cfg.Scope(), atbs.PageMap(pages))
	builder := &bundle.Builder{
		Fetcher:   deps.Fetcher,
		Rewriter:  m,
		Titles:    goquery.NewTitleExtractor(),
		Files:     deps.Files,
		Exercises: deps.Exercises,
		Pages:     pages,
		Nav:       atbs.NewNavOrder(cfg.Chapters),
		Chapters:  cfg.Chapters,
	}

	progress := func(e bundle.ProgressEvent) {
		switch e.Type {
		case bundle.ProgressPage:
			fmt.Fprintf(deps.Stdout, "Downloading %s: %s\n", e.Page.Label, e.Page.URL)
		case bundle.ProgressSaved:
			deps.Logger.Debug("page saved", "path", e.Page.Path, "title", e.Title)
		}
	}

	result, err := builder.Build(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	stats := m.Stats()
	deps.Logger.Info("bundle complete",
		"hosts", cfg.Scope().Hosts(),
		"pages", result.Pages,
		"bytes", result.Bytes,
		"assets", stats.Assets,
		"rewritten", stats.Rewritten,
		"failed", stats.Failed,
		"external", stats.External,
		"duration", result.Duration,
	)
	fmt.Fprintf(deps.Stdout, "Saved %d pages and %d assets (%d links localized, %d failed, %d external left online).\n",
		result.Pages, stats.Assets, stats.Rewritten, stats.Failed, stats.External)
	fmt.Fprintf(deps.Stdout, "Done. Open %s in your browser.\n", filepath.Join(c.Output, bundle.IndexPath))
	return nil
}

// errorMessage returns a message for users. Errors without an application
// code are shown in full since they carry the failing page.
func errorMessage(err error) string {
	if atbs.ErrorCode(err) == atbs.EINTERNAL {
		return err.Error()
	}
	return atbs.ErrorMessage(err)
}
