// Command svgedit inspects, converts and edits simple SVG drawings made of
// circles, rectangles and lines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/svgedit"
	"github.com/gogpu/svgedit/editor"
	"github.com/gogpu/svgedit/export"
	"github.com/gogpu/svgedit/internal/config"
	"github.com/gogpu/svgedit/svg"
)

// errUsage reports a malformed command line. The usage text has already
// been printed.
var errUsage = errors.New("usage")

// runGUI is replaced in tests.
var runGUI = editor.Run

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type command struct {
	long, short string
	run         func(app *app, args []string) error
}

var commands = []command{
	{"--parse", "-p", (*app).parse},
	{"--export_bmp", "-eb", (*app).exportBMP},
	{"--export_jpg", "-ej", (*app).exportJPG},
	{"--export", "-e", (*app).exportAny},
	{"--gui", "-g", (*app).gui},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if name == c.long || name == c.short {
			return c, true
		}
	}
	return command{}, false
}

type app struct {
	name   string
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{name: "svgedit", stdout: stdout, stderr: stderr}

	// Global flags come before the command, which itself looks like a flag.
	split := len(args)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if _, ok := lookup(arg); ok {
			split = i
			break
		}
		if arg == "-" || arg == "--" || !strings.HasPrefix(arg, "-") {
			break
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		switch name {
		case "config":
			if !hasValue {
				i++
			}
		case "v", "log-json", "h", "help":
		default:
			fmt.Fprintf(stderr, "Unknown command: %s\n", arg)
			a.usage()
			return 1
		}
	}

	fs := flag.NewFlagSet(a.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = a.usage
	var (
		configPath = fs.String("config", "", "YAML settings `file`")
		verbose    = fs.Bool("v", false, "log debug messages")
		logJSON    = fs.Bool("log-json", false, "log in JSON")
	)
	if err := fs.Parse(args[:split]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Unknown command: %s\n", fs.Arg(0))
		a.usage()
		return 1
	}
	if split == len(args) {
		a.usage()
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	a.cfg = cfg
	if err := a.setupLogging(*verbose, *logJSON); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cmd, _ := lookup(args[split])
	if err := cmd.run(a, args[split+1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) setupLogging(verbose, asJSON bool) error {
	level, err := a.cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if asJSON {
		h = slog.NewJSONHandler(a.stderr, opts)
	} else {
		h = slog.NewTextHandler(a.stderr, opts)
	}
	svgedit.SetLogger(slog.New(h))
	return nil
}

func (a *app) usage() {
	w := a.stderr
	p := a.name
	fmt.Fprintf(w, "svgedit - simple SVG processor\n\n")
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  %s [-config file] [-v] [-log-json] <command> [args]\n\n", p)
	fmt.Fprintf(w, "  Parse and display SVG:\n")
	fmt.Fprintf(w, "    %s --parse <input.svg>\n", p)
	fmt.Fprintf(w, "    %s -p <input.svg>\n\n", p)
	fmt.Fprintf(w, "  Export to BMP:\n")
	fmt.Fprintf(w, "    %s --export_bmp <input.svg> <output.bmp>\n", p)
	fmt.Fprintf(w, "    %s -eb <input.svg> <output.bmp>\n\n", p)
	fmt.Fprintf(w, "  Export to JPG:\n")
	fmt.Fprintf(w, "    %s --export_jpg <input.svg> <output.jpg> [quality]\n", p)
	fmt.Fprintf(w, "    %s -ej <input.svg> <output.jpg> [quality]\n", p)
	fmt.Fprintf(w, "    (quality: %d-%d, default: %d)\n\n", export.MinQuality, export.MaxQuality, export.DefaultQuality)
	fmt.Fprintf(w, "  Export to any format (%s):\n", strings.Join(export.Formats(), ", "))
	fmt.Fprintf(w, "    %s --export <input.svg> <output> [format]\n", p)
	fmt.Fprintf(w, "    %s -e <input.svg> <output> [format]\n\n", p)
	fmt.Fprintf(w, "  Interactive GUI Editor:\n")
	fmt.Fprintf(w, "    %s --gui [input.svg]\n", p)
	fmt.Fprintf(w, "    %s -g [input.svg]\n\n", p)
	fmt.Fprintf(w, "GUI Controls:\n")
	printControls(w)
}

func printControls(w io.Writer) {
	fmt.Fprintf(w, "  - Click to select and drag shapes\n")
	fmt.Fprintf(w, "  - Toolbar buttons to add shapes\n")
	fmt.Fprintf(w, "  - DELETE: Remove selected shape\n")
	fmt.Fprintf(w, "  - S: Save to SVG file\n")
	fmt.Fprintf(w, "  - T: Toggle toolbar\n")
	fmt.Fprintf(w, "  - +/-, wheel: Zoom; arrows: Pan; 0: Reset view\n")
	fmt.Fprintf(w, "  - ESC: Exit\n")
}

// need checks that args holds between lo and hi values.
func (a *app) need(args []string, lo, hi int, what string) error {
	if len(args) < lo {
		fmt.Fprintf(a.stderr, "Error: %s required\n", what)
		a.usage()
		return errUsage
	}
	if len(args) > hi {
		fmt.Fprintf(a.stderr, "Error: unexpected argument %q\n", args[hi])
		a.usage()
		return errUsage
	}
	return nil
}

func (a *app) parse(args []string) error {
	if err := a.need(args, 1, 1, "Input filename"); err != nil {
		return err
	}
	doc, err := svg.Load(args[0])
	if err != nil {
		return err
	}
	printSummary(a.stdout, doc)
	printShapes(a.stdout, doc)
	return nil
}

var titleCase = cases.Title(language.English)

func printSummary(w io.Writer, doc *svgedit.Document) {
	counts := make(map[svgedit.Kind]int)
	for _, s := range doc.All() {
		counts[s.Kind()]++
	}
	fmt.Fprintf(w, "SVG document: %gx%g, %d shapes\n", doc.Width, doc.Height, doc.Len())
	for _, k := range []svgedit.Kind{svgedit.KindCircle, svgedit.KindRect, svgedit.KindLine} {
		fmt.Fprintf(w, "  %-8s %d\n", titleCase.String(k.String())+"s:", counts[k])
	}
}

func printShapes(w io.Writer, doc *svgedit.Document) {
	for _, s := range doc.All() {
		kind := titleCase.String(s.Kind().String())
		switch s := s.(type) {
		case *svgedit.Circle:
			fmt.Fprintf(w, "[%d] %-6s cx=%.2f cy=%.2f r=%.2f fill=%s\n",
				s.ID(), kind, s.CX, s.CY, s.R, colorText(s.Fill, s.Color()))
		case *svgedit.Rect:
			fmt.Fprintf(w, "[%d] %-6s x=%.2f y=%.2f width=%.2f height=%.2f fill=%s\n",
				s.ID(), kind, s.X, s.Y, s.Width, s.Height, colorText(s.Fill, s.Color()))
		case *svgedit.Line:
			fmt.Fprintf(w, "[%d] %-6s x1=%.2f y1=%.2f x2=%.2f y2=%.2f stroke=%s\n",
				s.ID(), kind, s.X1, s.Y1, s.X2, s.Y2, colorText(s.Stroke, s.Color()))
		}
	}
}

// colorText shows a stored color, or the default it resolves to.
func colorText(stored string, resolved svgedit.RGB) string {
	if stored == "" {
		return resolved.Hex() + " (default)"
	}
	return stored
}

func (a *app) exportBMP(args []string) error {
	if err := a.need(args, 2, 2, "Output filename"); err != nil {
		return err
	}
	if err := a.export(args[0], args[1], export.Options{Format: "bmp"}); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Successfully exported to BMP: %s\n", args[1])
	return nil
}

func (a *app) exportJPG(args []string) error {
	if err := a.need(args, 2, 3, "Output filename"); err != nil {
		return err
	}
	quality := a.cfg.JPEGQuality
	if len(args) == 3 {
		q, err := strconv.Atoi(args[2])
		if err != nil || q < export.MinQuality || q > export.MaxQuality {
			fmt.Fprintf(a.stderr, "Warning: Quality must be %d-%d, using default %d\n",
				export.MinQuality, export.MaxQuality, export.DefaultQuality)
			q = export.DefaultQuality
		}
		quality = q
	}
	if err := a.export(args[0], args[1], export.Options{Format: "jpeg", Quality: quality}); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Successfully exported to JPG: %s (quality: %d)\n", args[1], quality)
	return nil
}

func (a *app) exportAny(args []string) error {
	if err := a.need(args, 2, 3, "Output filename"); err != nil {
		return err
	}
	opts := export.Options{Quality: a.cfg.JPEGQuality}
	if len(args) == 3 {
		opts.Format = args[2]
	}
	name := opts.Format
	if name == "" {
		var err error
		if name, err = export.ForPath(args[1]); err != nil {
			return err
		}
	}
	if err := a.export(args[0], args[1], opts); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Successfully exported to %s: %s\n", strings.ToUpper(name), args[1])
	return nil
}

// export loads in and writes it to out.
func (a *app) export(in, out string, opts export.Options) error {
	doc, err := svg.Load(in)
	if err != nil {
		return fmt.Errorf("failed to load SVG file: %w", err)
	}
	if err := export.ExportFile(out, doc, opts); err != nil {
		return fmt.Errorf("failed to export %s: %w", out, err)
	}
	return nil
}

func (a *app) gui(args []string) error {
	if err := a.need(args, 0, 1, "Input filename"); err != nil {
		return err
	}
	var doc *svgedit.Document
	if len(args) == 1 {
		var err error
		if doc, err = svg.Load(args[0]); err != nil {
			fmt.Fprintf(a.stderr, "Warning: %v\n", err)
			fmt.Fprintf(a.stderr, "Starting with empty document...\n")
		}
	}
	fmt.Fprintf(a.stdout, "Starting GUI editor...\n")
	fmt.Fprintf(a.stdout, "Controls:\n")
	printControls(a.stdout)
	return runGUI(doc, a.cfg)
}
