// glprobe reports which GL window-system backends this machine offers and
// where the given entry points resolve.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abemedia/glload"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	wsiFlag = &cli.StringFlag{
		Name:  "wsi",
		Usage: "backend to select: auto, wgl, glx or egl",
		Value: "auto",
	}
	debugFlag = &cli.StringFlag{
		Name:  "debug",
		Usage: "comma separated diagnostics: errors, calls, abort, strict, keepxhandler",
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "nocolor",
		Usage: "disable colored output",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log diagnostics through a development logger",
	}
)

// defaultSymbols are resolved when no entry points are named.
var defaultSymbols = []string{"glGetString", "glGetError", "glClear", "glGenBuffers"}

var app = &cli.App{
	Name:      filepath.Base(os.Args[0]),
	Usage:     "probe GL window-system backends",
	ArgsUsage: "[symbol...]",
	Writer:    os.Stdout,
	Flags:     []cli.Flag{wsiFlag, debugFlag, noColorFlag, verboseFlag},
	Action:    probe,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	wsi     glload.WSI
	cfg     glload.Config
	symbols []string
	color   bool
	verbose bool
}

func getOptions(ctx *cli.Context) (options, error) {
	w, err := glload.ParseWSI(ctx.String(wsiFlag.Name))
	if err != nil {
		return options{}, fmt.Errorf("--%s: %w", wsiFlag.Name, err)
	}
	opts := options{
		wsi:     w,
		cfg:     glload.ParseDebug(ctx.String(debugFlag.Name)),
		symbols: ctx.Args().Slice(),
		verbose: ctx.Bool(verboseFlag.Name),
	}
	if len(opts.symbols) == 0 {
		opts.symbols = defaultSymbols
	}
	if !ctx.Bool(noColorFlag.Name) {
		fd := os.Stdout.Fd()
		opts.color = (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"
	}
	return opts, nil
}

func probe(ctx *cli.Context) error {
	opts, err := getOptions(ctx)
	if err != nil {
		return err
	}
	color.NoColor = !opts.color

	if opts.verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck
		glload.SetLogHandler(glload.ZapSink(log))
	}
	glload.Configure(opts.cfg)
	glload.SetWSI(opts.wsi)

	out := ctx.App.Writer
	status := glload.Probe()
	renderBackends(out, status)

	rows := make([]symbolRow, 0, len(opts.symbols))
	for _, sym := range opts.symbols {
		row := symbolRow{name: sym, addr: glload.GetProcAddress(sym)}
		for _, st := range status {
			if st.Available() {
				row.backends = append(row.backends, glload.ProcAddress(st.WSI, sym))
			} else {
				row.backends = append(row.backends, 0)
			}
		}
		rows = append(rows, row)
	}
	fmt.Fprintf(out, "\nselected backend: %s\n\n", color.New(color.Bold).Sprint(glload.CurrentWSI()))
	renderSymbols(out, status, rows)
	return nil
}

var (
	okColor   = color.New(color.FgGreen).SprintFunc()
	failColor = color.New(color.FgRed).SprintFunc()
	dimColor  = color.New(color.Faint).SprintFunc()
)

// renderBackends prints one row per backend with the library and hallmark
// entry point that answered the probe.
func renderBackends(w io.Writer, status []glload.BackendStatus) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Backend", "Status", "Library", "Symbol"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	for _, st := range status {
		var state string
		switch {
		case !st.Supported:
			state = dimColor("unsupported")
		case st.Available():
			state = okColor("available")
		default:
			state = failColor("missing")
		}
		table.Append([]string{strings.ToUpper(st.WSI.String()), state, st.Library, st.Symbol})
	}
	table.Render()
}

type symbolRow struct {
	name     string
	addr     uintptr
	backends []uintptr // parallel to the probed backends
}

func renderSymbols(w io.Writer, status []glload.BackendStatus, rows []symbolRow) {
	header := []string{"Symbol", "Selected"}
	for _, st := range status {
		header = append(header, strings.ToUpper(st.WSI.String()))
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	for _, r := range rows {
		line := []string{r.name, formatAddr(r.addr)}
		for i, a := range r.backends {
			if !status[i].Available() {
				line = append(line, dimColor("-"))
				continue
			}
			line = append(line, formatAddr(a))
		}
		table.Append(line)
	}
	table.Render()
}

func formatAddr(a uintptr) string {
	if a == 0 {
		return failColor("not found")
	}
	return okColor(fmt.Sprintf("0x%x", a))
}
