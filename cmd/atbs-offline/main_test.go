package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
	main "github.com/Fawaz-I/automate-the-boring-stuff/cmd/atbs-offline"
	"github.com/Fawaz-I/automate-the-boring-stuff/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "atbs-offline")
	assert.Contains(t, stdout.String(), "--output")
	assert.Contains(t, stdout.String(), "--exercises")
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--bogus"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_NegativeRetries(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--retries=-1", "--output", t.TempDir()}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, atbs.EINVALID, atbs.ErrorCode(err))
	assert.Equal(t, "error: --retries must be between 0 and 10, got -1\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestMain_Run_MissingConfigFile(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, atbs.ENOTFOUND, atbs.ErrorCode(err))
	assert.Contains(t, stderr.String(), "error: config file")
}

// site returns a fetcher serving a minimal page for every configured page.
func site(cfg *atbs.Config, overrides map[string]string) *mock.Fetcher {
	bodies := make(map[string]string)
	for _, p := range cfg.Pages() {
		bodies[p.URL] = "<html><body>" + p.Label + "</body></html>"
	}
	for url, body := range overrides {
		bodies[url] = body
	}
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) ([]byte, error) {
			body, ok := bodies[url]
			if !ok {
				return nil, &atbs.FetchError{URL: url, Err: errors.New("HTTP 404")}
			}
			return []byte(body), nil
		},
	}
}

func oneChapter() *atbs.Config {
	cfg := atbs.DefaultConfig()
	cfg.Chapters = cfg.Chapters[:1]
	return cfg
}

func TestCLI_Run(t *testing.T) {
	t.Parallel()

	t.Run("builds the bundle and reports progress", func(t *testing.T) {
		t.Parallel()

		// Given
		root := t.TempDir()
		cfg := oneChapter()
		cli := &main.CLI{
			Output:    filepath.Join(root, "offline_content"),
			Exercises: filepath.Join(root, "exercises"),
		}
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &stdout,
			Stderr:  &stderr,
			Config:  cfg,
			Fetcher: site(cfg, nil),
		}
		require.NoError(t, cli.Wire(deps))

		// When
		err := cli.Run(deps)

		// Then
		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Downloading Introduction: https://automatetheboringstuff.com/3e/chapter0.html\n")
		assert.Contains(t, out, "Downloading Answers: https://inventwithpython.com/automate3workbook/answers.html\n")
		assert.Contains(t, out, "Saved 7 pages and 0 assets (0 links localized, 0 failed, 0 external left online).\n")
		assert.Contains(t, out, "Done. Open "+filepath.Join(cli.Output, "index.html")+" in your browser.\n")
		assert.FileExists(t, filepath.Join(cli.Output, "index.html"))
		assert.FileExists(t, filepath.Join(cli.Exercises, "01_python_basics", "README.md"))
		assert.Empty(t, stderr.String())
	})

	t.Run("debug logs fetches and writes with a run id", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		cfg := oneChapter()
		cli := &main.CLI{
			Output:    filepath.Join(root, "out"),
			Exercises: filepath.Join(root, "ex"),
			Debug:     true,
		}
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &stdout,
			Stderr:  &stderr,
			Config:  cfg,
			Fetcher: site(cfg, nil),
		}
		require.NoError(t, cli.Wire(deps))

		require.NoError(t, cli.Run(deps))

		logs := stderr.String()
		assert.Contains(t, logs, "msg=fetch")
		assert.Contains(t, logs, "msg=write")
		assert.Contains(t, logs, "path=book/chapter1.html")
		assert.Contains(t, logs, "msg=\"bundle complete\"")
		assert.Contains(t, logs, `hosts="[automatetheboringstuff.com inventwithpython.com]"`)
		assert.Regexp(t, `run=[0-9a-f]{8}-[0-9a-f]{4}-`, logs)
	})

	t.Run("a failing page stops the run and names the url", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		cfg := oneChapter()
		fetcher := site(cfg, nil)
		inner := fetcher.FetchFn
		fetcher.FetchFn = func(ctx context.Context, url string) ([]byte, error) {
			if url == "https://inventwithpython.com/automate3workbook/chapter1.html" {
				return nil, &atbs.FetchError{URL: url, Err: errors.New("HTTP 503")}
			}
			return inner(ctx, url)
		}
		cli := &main.CLI{
			Output:    filepath.Join(root, "out"),
			Exercises: filepath.Join(root, "ex"),
		}
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &stdout,
			Stderr:  &stderr,
			Config:  cfg,
			Fetcher: fetcher,
		}
		require.NoError(t, cli.Wire(deps))

		err := cli.Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: fetch https://inventwithpython.com/automate3workbook/chapter1.html: HTTP 503\n", stderr.String())
		assert.NotContains(t, stdout.String(), "Done.")
		_, statErr := os.Stat(filepath.Join(cli.Output, "index.html"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestCLI_Wire(t *testing.T) {
	t.Parallel()

	t.Run("loads the config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bundle.yaml")
		require.NoError(t, os.WriteFile(path, []byte("chapters:\n  - number: 5\n    slug: debugging\n"), 0644))
		cli := &main.CLI{Config: path, Output: t.TempDir(), Exercises: t.TempDir()}
		var stderr bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &stderr}

		require.NoError(t, cli.Wire(deps))

		assert.Equal(t, []atbs.Chapter{{Number: 5, Slug: "debugging"}}, deps.Config.Chapters)
		assert.NotNil(t, deps.Fetcher)
		assert.NotNil(t, deps.Files)
		assert.NotNil(t, deps.Exercises)
	})

	t.Run("rejects an invalid config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bundle.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hosts: []\n"), 0644))
		cli := &main.CLI{Config: path}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		err := cli.Wire(deps)

		require.Error(t, err)
		assert.Equal(t, atbs.EINVALID, atbs.ErrorCode(err))
	})

	t.Run("rejects out of range retries and rates", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			cli  main.CLI
		}{
			{"negative retries", main.CLI{Retries: -1}},
			{"too many retries", main.CLI{Retries: 1000}},
			{"negative rate", main.CLI{Rate: -0.5}},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				cli := tt.cli
				deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

				err := cli.Wire(deps)

				require.Error(t, err)
				assert.Equal(t, atbs.EINVALID, atbs.ErrorCode(err))
				assert.Nil(t, deps.Fetcher)
			})
		}
	})

	t.Run("accepts the maximum retry count", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{Retries: 10, Output: t.TempDir(), Exercises: t.TempDir()}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		require.NoError(t, cli.Wire(deps))
		assert.NotNil(t, deps.Fetcher)
	})
}
