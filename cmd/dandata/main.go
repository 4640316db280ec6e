package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dandata/cmd/dandata/config"
	"dandata/cmd/dandata/ui"
	"dandata/internal/assist"
	"dandata/internal/catalog"
	"dandata/internal/gateway"
	"dandata/internal/query"
)

var (
	// Global flags
	verbose bool
	apiKey  string
	model   string
	timeout time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dandata",
	Short: "DanData Hub - explorer for Danish administrative registry data",
	Long: `DanData Hub is a research companion for Danish administrative
registry data (Danmarks Statistik and related sources).

It combines a static catalog of the core registers (BEF, IDAN, LPR, ...)
with three AI-assisted tools backed by Google Search grounding:
  - registry assistant: ask questions about a specific register
  - literature search:  find papers in top economics journals
  - variable browser:   deep search DST variable documentation

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Interactive mode owns the terminal; keep the logger quiet there
		if cmd.Use == "dandata" && cmd.CalledAs() == "dandata" {
			logger = zap.NewNop()
			return nil
		}

		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// explainCmd answers a question about one registry
var explainCmd = &cobra.Command{
	Use:   "explain [registry-code] [question]",
	Short: "Ask the registry assistant about a specific register",
	Long: `Answers a methodological question about a Danish register, grounded
in official documentation via Google Search.

Examples:
  dandata explain IND "Does IND include income from self-employment?"
  dandata explain BEF "How are municipality codes recorded?"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runExplain,
}

// papersCmd searches the literature
var papersCmd = &cobra.Command{
	Use:   "papers [topic...]",
	Short: "Find papers in top economics journals using registry data",
	Long: `Searches AEA, NBER, CEPR, QJE and JPE for papers that use Danish
registry data. Use --registry to restrict to one register.

Examples:
  dandata papers labor supply
  dandata papers --registry IDAN intergenerational mobility`,
	RunE: runPapers,
}

// variablesCmd searches DST variable documentation
var variablesCmd = &cobra.Command{
	Use:   "variables [query...]",
	Short: "Deep search DST variable documentation",
	Long: `Searches the Times documentation and research variable lists on
dst.dk for variable definitions.

Examples:
  dandata variables AEL_KOMKOD
  dandata variables hospital diagnosis ICD-10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVariables,
}

// registriesCmd lists the static catalog
var registriesCmd = &cobra.Command{
	Use:   "registries [filter]",
	Short: "List the registry catalog, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRegistries,
}

var papersRegistry string

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY env)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "Gemini model (default "+gateway.DefaultModel+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 90*time.Second, "Request timeout")

	papersCmd.Flags().StringVar(&papersRegistry, "registry", "", "Restrict search to one registry (name or code)")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(papersCmd)
	rootCmd.AddCommand(variablesCmd)
	rootCmd.AddCommand(registriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveKey picks the API key in precedence order: flag, environment,
// config file.
func resolveKey(cfg config.Config) string {
	if apiKey != "" {
		return apiKey
	}
	if env := os.Getenv("GEMINI_API_KEY"); env != "" {
		return env
	}
	return cfg.APIKey
}

func newService() (*assist.Service, config.Config) {
	// Load returns defaults alongside any error, so a corrupt config
	// file degrades to flags and environment instead of refusing to run.
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config unreadable, using defaults", zap.Error(err))
	}

	m := model
	if m == "" {
		m = cfg.Model
	}
	client := gateway.New(gateway.Config{
		APIKey:  resolveKey(cfg),
		Model:   m,
		Timeout: timeout,
	}, logger)

	return assist.NewService(client, logger), cfg
}

func runInteractive() error {
	svc, cfg := newService()

	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
	p := tea.NewProgram(ui.NewApp(svc, styles), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

func runExplain(cmd *cobra.Command, args []string) error {
	svc, _ := newService()

	code := args[0]
	question := strings.Join(args[1:], " ")
	logger.Debug("Explaining registry", zap.String("code", code))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return printResult(svc.ExplainRegistry(ctx, code, question))
}

func runPapers(cmd *cobra.Command, args []string) error {
	svc, _ := newService()

	// An unnamed registry still searches, under the generic label.
	name := strings.TrimSpace(papersRegistry)
	if name == "" {
		name = query.GenericRegistryLabel
	} else if reg, ok := catalog.ByCode(name); ok {
		name = reg.Name
	}
	topic := strings.Join(args, " ")
	logger.Debug("Searching papers", zap.String("registry", name), zap.String("topic", topic))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return printResult(svc.FindRelatedPapers(ctx, name, topic))
}

func runVariables(cmd *cobra.Command, args []string) error {
	svc, _ := newService()

	q := strings.Join(args, " ")
	logger.Debug("Searching variables", zap.String("query", q))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return printResult(svc.SearchVariables(ctx, q))
}

func runRegistries(cmd *cobra.Command, args []string) error {
	term := ""
	if len(args) == 1 {
		term = args[0]
	}

	regs := catalog.Filter(term)
	if len(regs) == 0 {
		fmt.Println("No registries match.")
		return nil
	}

	for _, r := range regs {
		fmt.Printf("%-12s %-48s %s\n", r.Code, r.Name, r.Category)
	}
	return nil
}

// printResult renders a panel result for one-shot use: markdown body
// followed by the grounding sources.
func printResult(res assist.Result) error {
	fmt.Println(ui.RenderMarkdown(res.Text, 100, ui.DetectTheme().IsDark))
	if len(res.Sources) > 0 {
		fmt.Println("Sources:")
		for _, src := range res.Sources {
			fmt.Printf("  - %s (%s)\n", src.Title, src.URI)
		}
	}
	return nil
}
