// Package cli wires configuration, logging, the catalog and the sink
// together behind the assetcreator command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"assetcreator/internal/catalog"
	"assetcreator/internal/config"
	"assetcreator/internal/eventbus"
	"assetcreator/internal/logging"
	"assetcreator/internal/session"
	"assetcreator/internal/sink"
	"assetcreator/internal/ui"
)

// Version information
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

type app struct {
	registry *catalog.Registry

	configPath  string
	projectRoot string
	dir         string
	selectPath  string
	variant     string
	logFile     string
	force       bool
}

// environment is everything a command needs once flags are applied
type environment struct {
	cfg      *config.Config
	configs  config.ConfigService
	bus      eventbus.EventBus
	provider *catalog.Provider
	sink     *sink.FileSink
	logs     io.Closer
	unsub    []func()
}

// Close drains the bus before the log file goes away
func (e *environment) Close() {
	e.bus.Close()
	for _, unsub := range e.unsub {
		unsub()
	}
	if err := e.logs.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
	}
}

// Execute runs the command tree over registry and exits non-zero on error
func Execute(registry *catalog.Registry) {
	if err := NewCLI(registry).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewCLI builds the command tree. Types are taken from registry.
func NewCLI(registry *catalog.Registry) *cobra.Command {
	a := &app{registry: registry}

	rootCmd := &cobra.Command{
		Use:   "assetcreator",
		Short: "Search the registered data types and create an asset",
		Long: `assetcreator lists every creatable data type, narrows the list as you type
and writes a new asset of the chosen type into the project's asset directory.

Query words are separated by single spaces and matched case-insensitively
against the type name. Prefix a word with | to accept any of those words.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          a.runTUI,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&a.projectRoot, "root", "", "Project root directory")
	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "d", "", "Destination directory relative to the project root")
	rootCmd.PersistentFlags().StringVar(&a.variant, "variant", "", "Query grammar (simple, extended)")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Log file path, empty to disable")
	rootCmd.PersistentFlags().StringVarP(&a.selectPath, "select", "s", "", "Selected asset or folder; new assets go next to it")

	listCmd := &cobra.Command{
		Use:   "list [query...]",
		Short: "Print the types matching a query",
		RunE:  a.runList,
	}

	createCmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an asset of the named type without the interactive window",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runCreate,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of assetcreator",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "assetcreator version %s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings, including flag overrides, to the config file",
		Args:  cobra.NoArgs,
		RunE:  a.runConfigInit,
	}
	configInitCmd.Flags().BoolVarP(&a.force, "force", "f", false, "Overwrite an existing config file")
	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.configService(nil).Path())
		},
	}
	configCmd.AddCommand(configInitCmd, configPathCmd)

	rootCmd.AddCommand(listCmd, createCmd, configCmd, versionCmd)
	return rootCmd
}

func (a *app) configService(bus eventbus.EventBus) config.ConfigService {
	return config.NewConfigServiceWithBus(bus, a.configPath)
}

// setup starts the event bus, loads the configuration, applies flag
// overrides and starts logging. The caller must Close the environment.
func (a *app) setup(cmd *cobra.Command) (*environment, error) {
	// Nothing may reach the terminal before the log file is known
	if _, err := logging.Setup("", log.InfoLevel); err != nil {
		return nil, err
	}

	bus := eventbus.New()
	unsub := subscribeLogger(bus)

	svc := a.configService(bus)
	cfg, err := svc.Load()
	if err != nil {
		bus.Close()
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.ProjectRoot = a.projectRoot
	}
	if flags.Changed("variant") {
		cfg.Search.Variant = a.variant
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if root, err := filepath.Abs(cfg.ProjectRoot); err == nil {
		cfg.ProjectRoot = root
	}

	if err := cfg.Validate(); err != nil {
		bus.Close()
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logs, err := logging.Setup(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	env := &environment{
		cfg:     cfg,
		configs: svc,
		bus:     bus,
		sink:    sink.NewFileSink(cfg.ProjectRoot),
		logs:    logs,
		unsub:   unsub,
	}

	env.provider = catalog.NewProvider(catalog.BuildFor(a.registry, cfg.CatalogFilter()))
	env.provider.OnBuilt(func(count int) {
		env.bus.Publish(eventbus.CatalogBuiltEvent{Count: count})
	})

	log.Infof("Project root %s, search variant %s", cfg.ProjectRoot, cfg.Search.Variant)
	return env, nil
}

// destination picks the directory new assets go to: --dir, then the
// directory of --select, then the configured asset root
func (a *app) destination(env *environment) string {
	if a.dir != "" {
		return filepath.ToSlash(a.dir)
	}
	if a.selectPath != "" {
		selected, err := filepath.Abs(a.selectPath)
		if err == nil {
			if dest := sink.ResolveDestination(env.cfg.ProjectRoot, selected); dest != "" {
				return dest
			}
		}
		log.Debugf("Selection %s does not resolve to a directory under the project root", a.selectPath)
	}
	return env.cfg.AssetRoot
}

func (a *app) newSession(env *environment) *session.Session {
	return session.New(env.provider,
		session.WithSink(env.sink),
		session.WithBus(env.bus),
		session.WithSearchOptions(env.cfg.SearchOptions()),
	)
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	env, err := a.setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	model := ui.NewModel(a.newSession(env), a.destination(env))
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if result, ok := model.Result(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), result.Path)
	}
	return nil
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	env, err := a.setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	sess := a.newSession(env)
	sess.SetQuery(strings.Join(args, " "))

	matches := sess.CurrentMatches()
	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Not found.")
		return nil
	}

	rows := make([][]string, 0, len(matches))
	for _, entry := range matches {
		rows = append(rows, []string{entry.DisplayName(), entry.Name, entry.FileName()})
	}
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header([]string{"Display", "Type", "File"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func (a *app) runCreate(cmd *cobra.Command, args []string) error {
	env, err := a.setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	entry, ok := catalog.LookupShort(env.provider.Entries(), args[0])
	if !ok {
		return fmt.Errorf("unknown or ambiguous type %q", args[0])
	}

	result, err := session.Commit(env.sink, env.bus, entry, a.destination(env))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Path)
	return nil
}

func (a *app) runConfigInit(cmd *cobra.Command, args []string) error {
	env, err := a.setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	path := env.configs.Path()
	if _, err := os.Stat(path); err == nil && !a.force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := env.configs.Save(env.cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
