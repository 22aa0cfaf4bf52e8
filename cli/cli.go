package cli

import (
	"context"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pml/cli/cmd"
	"github.com/ardnew/pml/log"
	"github.com/ardnew/pml/pkg"
	"github.com/ardnew/pml/pml"
)

// CLI is the top-level command-line interface for pml.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Menu    string           `help:"Menu catalog file (YAML or JSON) replacing the built-in menu." placeholder:"FILE" type:"existingfile"`
	Version kong.VersionFlag `help:"Print version and exit."                                          short:"V"`

	Check     cmd.Check     `cmd:"" default:"withargs" help:"Validate orders."`
	Render    cmd.Render    `cmd:""                    help:"Validate and render orders."`
	Translate cmd.Translate `cmd:""                    help:"Print the markup an order translates to."`
	Catalog   cmd.Menu      `cmd:""                    help:"Print the active menu catalog."          name:"menu"`
	Edit      cmd.Edit      `cmd:""                    help:"Edit an order with live validation."`
	Init      cmd.Init      `cmd:""                    help:"Initialize configuration file."`
}

// Run executes the pml CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		"version":            pkg.Name + " " + pkg.Version,
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	proc, err := cli.processor(ctx)
	if err != nil {
		return err
	}

	// Execute the selected command
	return ktx.Run(proc)
}

// processor builds the order processor from the global flags.
func (c *CLI) processor(ctx context.Context) (*pml.Processor, error) {
	opts := []pml.Option{
		pml.WithLogger(log.With(slog.String("component", "pml"))),
	}

	if c.Menu != "" {
		f, err := os.Open(c.Menu)
		if err != nil {
			return nil, cmd.ErrLoadMenu.With(slog.String("file", c.Menu)).Wrap(err)
		}
		defer f.Close()

		catalog, err := pml.LoadCatalog(ctx, f)
		if err != nil {
			return nil, cmd.ErrLoadMenu.With(slog.String("file", c.Menu)).Wrap(err)
		}

		log.DebugContext(ctx, "menu loaded",
			slog.String("file", c.Menu),
			slog.Int("sizes", len(catalog.Sizes)),
			slog.Int("crusts", len(catalog.Crusts)),
			slog.Int("types", len(catalog.Types)),
		)

		opts = append(opts, pml.WithCatalog(catalog))
	}

	return pml.NewProcessor(opts...), nil
}

// joinSeq joins the strings of seq with commas, e.g. for a kong enum.
func joinSeq(seq iter.Seq[string]) string {
	return strings.Join(slices.Collect(seq), ",")
}
