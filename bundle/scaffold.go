package bundle

import (
	"context"
	"fmt"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
	"golang.org/x/sync/errgroup"
)

// IntroDir is the scaffold folder for setup practice before chapter 1.
const IntroDir = "00_intro"

// scaffoldConcurrency bounds concurrent README writes.
const scaffoldConcurrency = 4

const introReadme = "# Intro Setup Checklist\n" +
	"\n" +
	"Use this folder to test your baseline setup flow before chapter 1.\n" +
	"\n" +
	"## Manual repetition checklist\n" +
	"\n" +
	"1. Create a virtual environment: `python3 -m venv .venv`\n" +
	"2. Activate it: `source .venv/bin/activate`\n" +
	"3. Upgrade pip: `python -m pip install -U pip`\n" +
	"4. Create your own practice file(s) and run them.\n"

const chapterReadme = "# Chapter %d Exercise Workspace\n" +
	"\n" +
	"Mirror workflow: complete this chapter in `offline_content/index.html`, then practice here.\n" +
	"\n" +
	"## Project initialization (manual muscle memory)\n" +
	"\n" +
	"1. `python3 -m venv .venv`\n" +
	"2. `source .venv/bin/activate`\n" +
	"3. `python -m pip install -U pip`\n" +
	"4. Create files/folders yourself for this chapter (`src`, `tests`, scripts, notes).\n" +
	"5. Run your code and iterate.\n" +
	"\n" +
	"Keep this folder lightweight so you can re-initialize from scratch when needed.\n"

// ChapterReadme returns the guidance document for chapter n.
func ChapterReadme(n int) string {
	return fmt.Sprintf(chapterReadme, n)
}

// WriteScaffold writes the exercise folders: IntroDir plus one folder per
// chapter, each holding a README.md. Folders are independent and written
// concurrently; the first error cancels the rest.
func WriteScaffold(ctx context.Context, files atbs.FileSystem, chapters []atbs.Chapter) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scaffoldConcurrency)

	write := func(dir, readme string) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := files.MkdirAll(dir); err != nil {
				return fmt.Errorf("scaffold %s: %w", dir, err)
			}
			if err := files.WriteFile(dir+"/README.md", []byte(readme)); err != nil {
				return fmt.Errorf("scaffold %s: %w", dir, err)
			}
			return nil
		})
	}

	write(IntroDir, introReadme)
	for _, ch := range chapters {
		write(ch.Dir(), ChapterReadme(ch.Number))
	}
	return g.Wait()
}
