// Command droidicon generates Android launcher icons from a source image.
//
// Usage:
//
//	droidicon [-config droidicon.yaml] [-source icon.jpeg] [-output-root res] [flags]
//
// Flags given on the command line override values from the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gogpu/droidicon"
	"github.com/gogpu/droidicon/internal/config"
	"github.com/gogpu/droidicon/internal/watch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("droidicon", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath    = fs.String("config", "", "YAML config file")
		source        = fs.String("source", config.DefaultSource, "source image")
		outputRoot    = fs.String("output-root", config.DefaultOutputRoot, "Android res directory")
		borderPercent = fs.Float64("border-percent", 0, "white border around the trimmed subject, percent of its shorter side")
		contentRatio  = fs.Float64("content-ratio", 0.68, "share of the adaptive foreground canvas covered by content")
		filterName    = fs.String("filter", "lanczos", "resampling filter: lanczos, catmullrom, bilinear")
		families      = fs.String("families", "legacy,foreground", "icon families to generate")
		noTrim        = fs.Bool("no-trim", false, "keep the white margin around the subject")
		watchSource   = fs.Bool("watch", false, "regenerate whenever the source changes")
		debounce      = fs.Duration("debounce", watch.DefaultDebounce, "quiet period before regenerating in watch mode")
		verbose       = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "droidicon: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	droidicon.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer droidicon.SetLogger(nil)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "droidicon: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = *source
		case "output-root":
			cfg.OutputRoot = *outputRoot
		case "border-percent":
			cfg.BorderPercent = *borderPercent
		case "content-ratio":
			cfg.ContentRatio = *contentRatio
		case "filter":
			cfg.Filter = *filterName
		case "families":
			cfg.Families = []string{*families}
		case "no-trim":
			cfg.Trim = !*noTrim
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "droidicon: invalid configuration: %v\n", err)
		return 1
	}

	generate := func() error {
		res, err := droidicon.Run(cfg.Source, cfg.OutputRoot, cfg.Options()...)
		if err != nil {
			return err
		}
		printSummary(stdout, cfg.Source, res)
		return nil
	}

	if err := generate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if !*watchSource {
		return 0
	}

	return watchLoop(ctx, cfg.Source, *debounce, generate, stderr)
}

func watchLoop(ctx context.Context, source string, debounce time.Duration, generate func() error, stderr io.Writer) int {
	w, err := watch.New(source, debounce)
	if err != nil {
		fmt.Fprintf(stderr, "droidicon: %v\n", err)
		return 1
	}
	defer func() { _ = w.Close() }()

	if err := w.Run(ctx, generate); err != nil {
		fmt.Fprintf(stderr, "droidicon: %v\n", err)
		return 1
	}
	return 0
}

// printSummary lists the generated icons per density folder.
func printSummary(w io.Writer, source string, res *droidicon.Result) {
	fmt.Fprintf(w, "Generated %d icons from %s\n", len(res.Icons), source)

	var last string
	for _, icon := range res.Icons {
		if icon.Density.Label != last {
			last = icon.Density.Label
			fmt.Fprintf(w, "  %s: %dx%dpx\n", last, icon.Density.Size, icon.Density.Size)
		}
		fmt.Fprintf(w, "    %s\n", icon.Path)
	}
}
