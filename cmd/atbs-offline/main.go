package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("atbs-offline"),
		kong.Description("Build an offline copy of Automate the Boring Stuff (3e) and its workbook"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}
	if err := cli.Wire(deps); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
		return err
	}

	return cli.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output    string        `short:"o" default:"offline_content" help:"Directory for the bundle"`
	Exercises string        `short:"e" default:"exercises" help:"Directory for the exercise scaffold"`
	Config    string        `short:"c" type:"path" help:"YAML file overriding chapters, hosts or page URLs"`
	Timeout   time.Duration `short:"t" default:"30s" help:"Timeout per request"`
	Rate      float64       `default:"0" help:"Requests per second per host (0 = unlimited)"`
	Retries   int           `default:"0" help:"Retries per failed request"`
	Debug     bool          `help:"Log every fetch and write to stderr"`
}
