// Command selcount counts Chinese characters, English words, number groups and
// punctuation in text, and prints the breakdown as the counter tooltip would show it.
//
// Usage:
//
//	selcount [flags] [text...]
//
// Text comes from the arguments, from -f files, or from stdin.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/skosovsky/annohelper"
	"github.com/skosovsky/annohelper/embedregistry"
	"github.com/skosovsky/annohelper/fileregistry"
	"github.com/skosovsky/annohelper/profiles"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
)

type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

type options struct {
	profileDir string
	profile    string
	env        string
	style      string
	json       bool
	raw        bool
	lines      bool
	watch      bool
	help       bool
	files      stringList
	args       []string
}

// input is one selection to count.
type input struct {
	Name string
	Text string
}

// output is one counted selection.
type output struct {
	Name   string                 `json:"name"`
	Empty  bool                   `json:"empty"`
	Result annohelper.CountResult `json:"result"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if err := execute(ctx, opts, stdin, stdout, logger); err != nil {
		logger.Error("selcount failed", "error", err)
		fmt.Fprintln(stderr, "selcount:", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("selcount", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.profileDir, "profile-dir", "", "directory of YAML profiles (default: built-in profiles)")
	fs.StringVar(&opts.profile, "profile", profiles.Default, "profile name")
	fs.StringVar(&opts.env, "env", "", "profile environment, e.g. en")
	fs.StringVar(&opts.style, "style", "auto", "output style: auto, plain or box")
	fs.BoolVar(&opts.json, "json", false, "print results as JSON")
	fs.BoolVar(&opts.raw, "raw", false, "count surrounding whitespace instead of trimming it")
	fs.BoolVar(&opts.lines, "lines", false, "treat every stdin line as a separate selection")
	fs.BoolVar(&opts.watch, "watch", false, "reload -profile-dir manifests when they change (with -lines)")
	fs.BoolVar(&opts.help, "shortcuts", false, "print the shortcut help panel and exit")
	fs.Var(&opts.files, "f", "count the contents of `file` (repeatable)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch opts.style {
	case "auto", "plain", "box":
	default:
		fmt.Fprintf(stderr, "selcount: invalid -style %q\n", opts.style)
		return opts, fmt.Errorf("invalid style %q", opts.style)
	}
	if opts.watch && opts.profileDir == "" {
		fmt.Fprintln(stderr, "selcount: -watch needs -profile-dir")
		return opts, errors.New("watch without profile dir")
	}
	opts.args = fs.Args()
	return opts, nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func openRegistry(ctx context.Context, opts options, logger *slog.Logger) (annohelper.ProfileRegistry, error) {
	if opts.profileDir == "" {
		return embedregistry.New(profiles.FS, profiles.Root)
	}
	reg := fileregistry.New(opts.profileDir, fileregistry.WithLogger(logger))
	if opts.watch {
		if _, err := reg.Watch(ctx); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func execute(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel() // stops the profile watcher
	reg, err := openRegistry(ctx, opts, logger)
	if err != nil {
		return err
	}
	box := useBox(opts.style, stdout)
	if opts.help {
		p, err := reg.GetProfile(ctx, opts.profile, opts.env)
		if err != nil {
			return err
		}
		text, err := p.RenderHelp(ctx)
		if err != nil {
			return err
		}
		return writePanel(stdout, strings.TrimRight(text, "\n"), box)
	}
	counter := annohelper.SelectionCounter{Raw: opts.raw}
	if opts.lines && len(opts.files) == 0 && len(opts.args) == 0 {
		return countLines(ctx, reg, opts, counter, stdin, stdout, box, logger)
	}
	inputs, err := collectInputs(ctx, opts, stdin)
	if err != nil {
		return err
	}
	outs := countAll(counter, inputs)
	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outs)
	}
	p, err := reg.GetProfile(ctx, opts.profile, opts.env)
	if err != nil {
		return err
	}
	for _, o := range outs {
		if len(outs) > 1 {
			fmt.Fprintf(stdout, "== %s\n", o.Name)
		}
		if err := printOutput(ctx, stdout, p, o, box, logger); err != nil {
			return err
		}
	}
	return nil
}

// collectInputs reads -f files concurrently; otherwise uses args or stdin.
func collectInputs(ctx context.Context, opts options, stdin io.Reader) ([]input, error) {
	if len(opts.files) > 0 {
		inputs := make([]input, len(opts.files))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(8)
		for i, path := range opts.files {
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				data, err := os.ReadFile(path) // #nosec G304 -- user-supplied input file
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				inputs[i] = input{Name: path, Text: string(data)}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return inputs, nil
	}
	if len(opts.args) > 0 {
		return []input{{Name: "args", Text: strings.Join(opts.args, " ")}}, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return []input{{Name: "stdin", Text: string(data)}}, nil
}

func countAll(c annohelper.SelectionCounter, inputs []input) []output {
	outs := make([]output, len(inputs))
	for i, in := range inputs {
		res, ok := c.CountSelection(in.Text)
		outs[i] = output{Name: in.Name, Empty: !ok, Result: res}
	}
	return outs
}

// countLines treats stdin as a stream of selections. The profile is looked up
// per line so -watch edits apply to the next line.
func countLines(ctx context.Context, reg annohelper.ProfileRegistry, opts options, c annohelper.SelectionCounter,
	stdin io.Reader, stdout io.Writer, box bool, logger *slog.Logger,
) error {
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	enc := json.NewEncoder(stdout)
	n := 0
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		n++
		res, ok := c.CountSelection(sc.Text())
		o := output{Name: fmt.Sprintf("line %d", n), Empty: !ok, Result: res}
		if opts.json {
			if err := enc.Encode(o); err != nil {
				return err
			}
			continue
		}
		p, err := reg.GetProfile(ctx, opts.profile, opts.env)
		if err != nil {
			return err
		}
		if err := printOutput(ctx, stdout, p, o, box, logger); err != nil {
			return err
		}
	}
	return sc.Err()
}

func printOutput(ctx context.Context, w io.Writer, p *annohelper.Profile, o output, box bool, logger *slog.Logger) error {
	if o.Empty {
		logger.Debug("empty selection skipped", "input", o.Name)
		return nil
	}
	text, err := p.RenderCount(ctx, o.Result)
	if err != nil {
		return err
	}
	return writePanel(w, text, box)
}

func useBox(style string, w io.Writer) bool {
	switch style {
	case "box":
		return true
	case "plain":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
