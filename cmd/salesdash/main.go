// Package main provides the CLI entrypoint for salesdash.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkvl/salesdash/internal/analytics"
	"github.com/mkvl/salesdash/internal/config"
	"github.com/mkvl/salesdash/internal/dashui"
	"github.com/mkvl/salesdash/internal/dataset"
	"github.com/mkvl/salesdash/internal/feedback"
	"github.com/mkvl/salesdash/internal/model"
	"github.com/mkvl/salesdash/internal/store"
)

const (
	defaultDataFile    = "ecommerce_data.csv"
	defaultGranularity = "monthly"
	defaultTopN        = 10
	dateFormat         = "2006-01-02"
)

var (
	dashData        string
	dashDB          string
	dashFrom        string
	dashTo          string
	dashSegments    string
	dashRegions     string
	dashGranularity string
	dashTop         int
	dashFeedback    string

	exportOut string

	feedbackMessage string

	importData string
	importDB   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "salesdash",
		Short:         "Interactive sales analytics dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}
	addDatasetFlags(rootCmd)

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newFeedbackCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dashData, "data", defaultDataFile, "CSV dataset path")
	cmd.Flags().StringVar(&dashDB, "db", "", "SQLite dataset path (overrides --data)")
	cmd.Flags().StringVar(&dashFrom, "from", "", "start of order date range (YYYY-MM-DD, default: dataset min)")
	cmd.Flags().StringVar(&dashTo, "to", "", "end of order date range (YYYY-MM-DD, default: dataset max)")
	cmd.Flags().StringVar(&dashSegments, "segments", "", "customer segments, comma-separated ('all' for every segment)")
	cmd.Flags().StringVar(&dashRegions, "regions", "", "regions, comma-separated ('all' for every region)")
	cmd.Flags().StringVar(&dashGranularity, "granularity", defaultGranularity, "trend granularity: monthly or daily")
	cmd.Flags().IntVar(&dashTop, "top", defaultTopN, "number of top products by profit")
	cmd.Flags().StringVar(&dashFeedback, "feedback-file", "", "feedback log path")
}

func applyFileConfig(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "data", &dashData, fileCfg.Dashboard.Data)
	applyStringConfig(cmd, "db", &dashDB, fileCfg.Dashboard.DB)
	applyStringConfig(cmd, "from", &dashFrom, fileCfg.Dashboard.From)
	applyStringConfig(cmd, "to", &dashTo, fileCfg.Dashboard.To)
	applyStringsConfig(cmd, "segments", &dashSegments, fileCfg.Dashboard.Segments)
	applyStringsConfig(cmd, "regions", &dashRegions, fileCfg.Dashboard.Regions)
	applyStringConfig(cmd, "granularity", &dashGranularity, fileCfg.Dashboard.Granularity)
	applyIntConfig(cmd, "top", &dashTop, fileCfg.Dashboard.Top)
	applyStringConfig(cmd, "feedback-file", &dashFeedback, fileCfg.Dashboard.Feedback)
	return nil
}

// openSource builds the dataset source: the SQLite store when --db is
// set, the CSV file otherwise. The returned closer may be nil.
func openSource() (dataset.Source, func() error, error) {
	if dashDB != "" {
		st, err := store.Open(dashDB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open db: %w", err)
		}
		return st, st.Close, nil
	}
	return dataset.CSVSource{Path: dashData}, nil, nil
}

func feedbackLogPath() string {
	if dashFeedback != "" {
		return dashFeedback
	}
	return config.DefaultFeedbackPath()
}

func parseGranularity(value string) (model.Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "monthly", "":
		return model.Monthly, nil
	case "daily":
		return model.Daily, nil
	default:
		return model.Monthly, fmt.Errorf("invalid granularity %q (use monthly or daily)", value)
	}
}

func parseDateFlag(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateFormat, strings.TrimSpace(value), time.UTC)
}

// buildCriteria resolves flags into criteria. "all" selections expand
// to every distinct value of the loaded dataset; zero dates expand to
// the dataset's date span.
func buildCriteria(orders []model.Order) (model.Criteria, error) {
	from, err := parseDateFlag(dashFrom)
	if err != nil {
		return model.Criteria{}, fmt.Errorf("invalid --from value: %w", err)
	}
	to, err := parseDateFlag(dashTo)
	if err != nil {
		return model.Criteria{}, fmt.Errorf("invalid --to value: %w", err)
	}
	minDate, maxDate := analytics.DateSpan(orders)
	if from.IsZero() {
		from = minDate
	}
	if to.IsZero() {
		to = maxDate
	}
	return model.Criteria{
		From:     from,
		To:       to,
		Segments: resolveSelection(dashSegments, analytics.DistinctValues(orders, analytics.BySegment)),
		Regions:  resolveSelection(dashRegions, analytics.DistinctValues(orders, analytics.ByRegion)),
	}, nil
}

func resolveSelection(input string, available []string) []string {
	if strings.EqualFold(strings.TrimSpace(input), "all") {
		return append([]string(nil), available...)
	}
	return dashui.SplitList(input)
}

func buildOptions() (analytics.Options, error) {
	granularity, err := parseGranularity(dashGranularity)
	if err != nil {
		return analytics.Options{}, err
	}
	if dashTop <= 0 {
		return analytics.Options{}, fmt.Errorf("--top must be > 0")
	}
	return analytics.Options{Granularity: granularity, TopN: dashTop}, nil
}

func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}
	opts, err := buildOptions()
	if err != nil {
		return err
	}
	src, closeSource, err := openSource()
	if err != nil {
		return err
	}
	if closeSource != nil {
		defer func() {
			if cerr := closeSource(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	loader := dataset.NewLoader(src)
	orders, err := loader.Load(context.Background())
	if err != nil {
		return err
	}
	criteria, err := buildCriteria(orders)
	if err != nil {
		return err
	}

	log := feedback.NewLog(feedbackLogPath())
	ui := dashui.NewModel(loader, log, criteria, opts)
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a text report for the given filters",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	addDatasetFlags(cmd)
	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}
	report, opts, closeSource, err := buildReport(cmd)
	if closeSource != nil {
		defer func() {
			if cerr := closeSource(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := analytics.RenderKPIs(out, report); err != nil {
		return err
	}
	if err := analytics.RenderTrend(out, report.Trend, opts.Granularity, 0, 10, false); err != nil {
		return err
	}
	if err := analytics.RenderBarChart(out, "Sales by Region", report.SalesByRegion, 80); err != nil {
		return err
	}
	if err := analytics.RenderBarChart(out, "Sales by Category", report.SalesByCategory, 80); err != nil {
		return err
	}
	title := fmt.Sprintf("Top %d Products by Profit", opts.TopN)
	if err := analytics.RenderBarChart(out, title, report.TopProducts, 80); err != nil {
		return err
	}
	if err := analytics.RenderGroupTable(out, "Sales & Profit by Customer Segment",
		[]analytics.Dimension{analytics.BySegment},
		[]analytics.Metric{analytics.Sales, analytics.Profit},
		report.SegmentSummary); err != nil {
		return err
	}
	return analytics.RenderSeriesBars(out, "Preferred Categories by Segment", report.SegmentCategory, 80)
}

func buildReport(cmd *cobra.Command) (analytics.Report, analytics.Options, func() error, error) {
	opts, err := buildOptions()
	if err != nil {
		return analytics.Report{}, opts, nil, err
	}
	src, closeSource, err := openSource()
	if err != nil {
		return analytics.Report{}, opts, nil, err
	}
	loader := dataset.NewLoader(src)
	orders, err := loader.Load(cmd.Context())
	if err != nil {
		return analytics.Report{}, opts, closeSource, err
	}
	criteria, err := buildCriteria(orders)
	if err != nil {
		return analytics.Report{}, opts, closeSource, err
	}
	report, err := analytics.BuildReport(cmd.Context(), loader, criteria, opts)
	if err != nil {
		return analytics.Report{}, opts, closeSource, err
	}
	return report, opts, closeSource, nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export filtered rows as CSV",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	addDatasetFlags(cmd)
	cmd.Flags().StringVar(&exportOut, "out", "-", "output path ('-' for stdout)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}
	report, _, closeSource, err := buildReport(cmd)
	if closeSource != nil {
		defer func() {
			if cerr := closeSource(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}
	if err != nil {
		return err
	}

	if exportOut == "-" || exportOut == "" {
		return dataset.WriteCSV(cmd.OutOrStdout(), report.Filtered)
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOut, err)
	}
	werr := dataset.WriteCSV(f, report.Filtered)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("failed to export: %w", werr)
	}
	logErrf("Wrote %d rows to %s\n", len(report.Filtered), exportOut)
	return nil
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a CSV dataset into the SQLite store",
		Args:  cobra.NoArgs,
		RunE:  runImportCmd,
	}
	cmd.Flags().StringVar(&importData, "data", defaultDataFile, "CSV dataset path")
	cmd.Flags().StringVar(&importDB, "db", config.DefaultDBPath(), "SQLite dataset path")
	return cmd
}

func runImportCmd(cmd *cobra.Command, _ []string) error {
	orders, err := dataset.CSVSource{Path: importData}.Load(cmd.Context())
	if err != nil {
		return err
	}
	st, err := store.Open(importDB)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := st.ImportOrders(cmd.Context(), orders); err != nil {
		return fmt.Errorf("failed to import orders: %w", err)
	}
	logErrf("Imported %d orders into %s\n", len(orders), importDB)
	return nil
}

func newFeedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record or list dashboard feedback",
	}
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Append a feedback comment",
		Args:  cobra.NoArgs,
		RunE:  runFeedbackAddCmd,
	}
	addCmd.Flags().StringVarP(&feedbackMessage, "message", "m", "", "feedback text")
	addCmd.Flags().StringVar(&dashFeedback, "feedback-file", "", "feedback log path")
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded feedback",
		Args:  cobra.NoArgs,
		RunE:  runFeedbackListCmd,
	}
	listCmd.Flags().StringVar(&dashFeedback, "feedback-file", "", "feedback log path")
	cmd.AddCommand(addCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

func runFeedbackAddCmd(_ *cobra.Command, _ []string) error {
	log := feedback.NewLog(feedbackLogPath())
	if err := log.Append(time.Now(), feedbackMessage); err != nil {
		return err
	}
	logErrln("Feedback recorded.")
	return nil
}

func runFeedbackListCmd(cmd *cobra.Command, _ []string) error {
	log := feedback.NewLog(feedbackLogPath())
	entries, err := log.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		logErrln("No feedback submitted yet.")
		return nil
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", entry.At.Format("2006-01-02 15:04:05"), entry.Comment); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyStringsConfig(cmd *cobra.Command, name string, target *string, value *[]string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = strings.Join(*value, ",")
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# salesdash configuration
# Uncomment a value to enable it. CLI flags override config values.

[dashboard]
# data = %q                   # CSV dataset path
# db = ""                     # SQLite dataset path (overrides data)
# from = "2024-01-01"         # Start of order date range
# to = "2024-12-31"           # End of order date range
# segments = ["Consumer"]     # Customer segments
# regions = ["East", "West"]  # Regions
# granularity = %q            # Trend granularity: monthly or daily
# top = %d                    # Top products by profit
# feedback = ""               # Feedback log path
`,
		defaultDataFile,
		defaultGranularity,
		defaultTopN,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
