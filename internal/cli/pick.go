package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lookup/internal/config"
	"lookup/internal/dataset"
	"lookup/internal/domain"
	"lookup/internal/eventbus"
	"lookup/internal/logger"
	"lookup/internal/ui"
)

// ErrNoData is returned when pick has nothing to choose from
var ErrNoData = errors.New("no items: pass --data, arguments, or pipe lines on stdin")

type pickOptions struct {
	root    *rootOptions
	output  string
	watch   bool
	inspect bool
	title   string
}

// flagKeys maps pick flags to the config keys they override
var flagKeys = []struct {
	flag string
	key  string
}{
	{"data", "data_file"},
	{"display-key", "display_key"},
	{"placeholder", "placeholder"},
	{"select-text", "select_text"},
	{"hide-trigger", "hide_select_button"},
	{"matcher", "matcher"},
	{"hide-delay", "hide_delay"},
	{"max-visible", "max_visible"},
	{"log-file", "log_file"},
	{"verbose", "log_level"},
}

func newPickCommand(root *rootOptions) *cobra.Command {
	opts := &pickOptions{root: root}

	cmd := &cobra.Command{
		Use:   "pick [items...]",
		Short: "Choose one item and print it",
		Long: `Open the picker over a list of items and print the chosen one.

Items come from --data (JSON, YAML or TOML), from the arguments, or one
per line on stdin. Enter picks the highlighted result; alt+enter picks
the typed text when nothing matches. Exits with status 1 when cancelled.`,
		Example: `  ls | lookup pick
  lookup pick --data fruits.yaml --display-key name --output json
  lookup pick --matcher fuzzy --hide-trigger red green blue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.String("data", "", "file holding the items (.json, .yaml, .yml or .toml)")
	f.String("display-key", "", "item field shown and searched")
	f.String("placeholder", "", "placeholder of the search field")
	f.String("select-text", "", "label of the trigger button")
	f.Bool("hide-trigger", false, "skip the trigger and open the picker at once")
	f.String("matcher", "", "substring or fuzzy")
	f.String("hide-delay", "", "length of the close transition, e.g. 150ms")
	f.Int("max-visible", 0, "result rows shown at once")
	f.StringVarP(&opts.output, "output", "o", OutputText, "output format: text, json, yaml or toml")
	f.BoolVar(&opts.watch, "watch", false, "reload --data when the file changes")
	f.BoolVar(&opts.inspect, "inspect", false, "show the chosen item in a pager before printing it")
	f.StringVar(&opts.title, "title", "lookup", "heading shown above the trigger")
	return cmd
}

// flagOverrides collects the config keys set on the command line
func flagOverrides(cmd *cobra.Command) (map[string]any, error) {
	overrides := map[string]any{}
	flags := cmd.Flags()
	for _, fk := range flagKeys {
		fl := flags.Lookup(fk.flag)
		if fl == nil || !fl.Changed {
			continue
		}
		var (
			v   any
			err error
		)
		switch fl.Value.Type() {
		case "bool":
			v, err = flags.GetBool(fk.flag)
		case "int":
			v, err = flags.GetInt(fk.flag)
		default:
			v = fl.Value.String()
		}
		if err != nil {
			return nil, err
		}
		overrides[fk.key] = v
	}
	return overrides, nil
}

// loadItems picks the item source: the data file, the arguments, then stdin
func loadItems(cfg *config.Config, args []string, stdin io.Reader, stdinTTY bool) ([]domain.Item, error) {
	var (
		items []domain.Item
		err   error
	)
	switch {
	case cfg.DataFile != "":
		items, err = dataset.Load(cfg.DataFile)
	case len(args) > 0:
		items, err = dataset.FromLines(strings.NewReader(strings.Join(args, "\n")), cfg.DisplayKey)
	case !stdinTTY:
		items, err = dataset.FromLines(stdin, cfg.DisplayKey)
	}
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoData
	}
	return items, nil
}

func runPick(cmd *cobra.Command, opts *pickOptions, args []string) error {
	if err := validOutput(opts.output); err != nil {
		return err
	}

	overrides, err := flagOverrides(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.root, overrides)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.watch && cfg.DataFile == "" {
		return errors.New("--watch needs a data file")
	}

	lg := logger.New(cfg.LogFile, cfg.LogLevel, Version)
	defer func() { _ = lg.Close() }()
	log := lg.Logr()

	ctx, cancel := context.WithCancel(logger.WithLogger(cmd.Context(), log))
	defer cancel()

	items, err := loadItems(cfg, args, cmd.InOrStdin(), stdinIsTerminal())
	if err != nil {
		return err
	}
	log.Info("starting picker", "items", len(items), "matcher", cfg.Matcher, "data", cfg.DataFile)

	bus := eventbus.New(log)
	bus.SubscribeAll(func(e eventbus.DomainEvent) {
		log.V(1).Info("event", "type", string(e.Type()))
	})

	wopts := cfg.ToOptions()
	wopts.Data = items
	wopts.Logger = log
	wopts.Bus = bus
	a := newApp(wopts, opts.title)

	tty, err := openTerminal()
	if err != nil {
		return err
	}
	defer tty.close()

	p := tea.NewProgram(a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(tty.in),
		tea.WithOutput(tty.out),
		tea.WithContext(ctx),
	)
	a.pager = ui.NewPagerOps(p)

	if opts.watch {
		ws := dataset.NewWatchService(bus, log)
		err := ws.StartWatch(ctx, cfg.DataFile, func(items []domain.Item) {
			p.Send(ui.DataMsg{Items: items})
		})
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", cfg.DataFile, err)
		}
		defer ws.StopWatch()
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return ErrCancelled
		}
		return fmt.Errorf("picker failed: %w", err)
	}

	item, ok := a.Result()
	if !ok {
		log.Info("selection cancelled")
		return ErrCancelled
	}

	if opts.inspect {
		if err := inspect(item, opts.output, cfg.DisplayKey); err != nil {
			log.Error(err, "failed to show item")
		}
	}
	return writeItem(cmd.OutOrStdout(), item, opts.output, cfg.DisplayKey)
}

// inspect pages the item as YAML, or in the output format when that is structured
func inspect(item domain.Item, format, displayKey string) error {
	if format == OutputText {
		format = OutputYAML
	}
	var buf bytes.Buffer
	if err := writeItem(&buf, item, format, displayKey); err != nil {
		return err
	}
	return ui.NewPagerOps(nil).ShowInPager(buf.String())
}
