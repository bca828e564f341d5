package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/iwvelando/automobile-sales/internal/config"
	"github.com/iwvelando/automobile-sales/internal/dataset"
	"github.com/iwvelando/automobile-sales/internal/export"
	"github.com/iwvelando/automobile-sales/internal/render"
	"github.com/iwvelando/automobile-sales/internal/report"
	"github.com/iwvelando/automobile-sales/internal/server"
	"github.com/iwvelando/automobile-sales/pkg/constants"
	"github.com/iwvelando/automobile-sales/pkg/output"
	"github.com/iwvelando/automobile-sales/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by every subcommand once the root pre-run has
// loaded configuration and generated the table.
type app struct {
	configPath string
	envPath    string
	logLevel   string
	seed       uint64

	conf   *config.Configuration
	logger *zap.Logger
	table  *dataset.Table
}

type selectionFlags struct {
	statistics string
	year       int
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "automobile-sales",
		Short:         "Synthetic automobile sales dataset and statistics dashboard",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	cmd.PersistentFlags().StringVar(&a.envPath, "env-file", ".env", "optional dotenv file loaded before configuration")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	cmd.PersistentFlags().Uint64Var(&a.seed, "seed", constants.DefaultSeed, "random seed override for dataset generation")

	cmd.AddCommand(
		a.newServeCmd(),
		a.newReportCmd(),
		a.newExportCmd(),
		a.newSummaryCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(a.envPath); err != nil {
		return err
	}

	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}
	if cmd.Flags().Changed("seed") {
		conf.Dataset.Seed = a.seed
	}

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	a.conf = conf
	a.logger = logger
	a.table = dataset.Generate(logger, conf.Dataset.Seed)
	return nil
}

func (s *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.statistics, "statistics", "", "report to build: yearly or recession (default from config)")
	cmd.Flags().IntVar(&s.year, "year", 0, "year for the yearly report (default from config)")
}

// resolve merges the flags with the configured defaults.
func (s *selectionFlags) resolve(cmd *cobra.Command, conf *config.Configuration) (report.Selection, error) {
	statistics := s.statistics
	if !cmd.Flags().Changed("statistics") {
		statistics = conf.Output.Statistics
	}
	year := s.year
	if !cmd.Flags().Changed("year") {
		year = conf.Output.Year
	}

	if err := validation.ValidateStatistics(statistics); err != nil {
		return report.Selection{}, err
	}
	sel, ok := report.ParseSelection(statistics, strconv.Itoa(year))
	if !ok {
		return report.Selection{}, fmt.Errorf("no report selected for statistics %q and year %d", statistics, year)
	}
	return sel, nil
}

func (a *app) newServeCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverConf := a.conf.Server
			if address != "" {
				serverConf.Address = address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := server.NewHandler(a.logger, a.table, a.conf, version)
			return server.New(a.logger, serverConf, handler).Start(ctx)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8050")
	return cmd
}

func (a *app) newReportCmd() *cobra.Command {
	var (
		sel          selectionFlags
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the aggregates of one report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outputFormat == "" {
				outputFormat = a.conf.Output.Format
			}
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			selection, err := sel.resolve(cmd, a.conf)
			if err != nil {
				return err
			}
			if selection.Kind == report.KindYearly {
				if warning := validation.YearWarning(selection.Year); warning != "" {
					a.logger.Warn(warning, zap.String("op", "main.report"))
				}
			}

			return output.Write(cmd.OutOrStdout(), outputFormat, report.Build(a.table, selection))
		},
	}
	sel.register(cmd)
	cmd.Flags().StringVar(&outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	return cmd
}

func (a *app) newExportCmd() *cobra.Command {
	var (
		sel            selectionFlags
		dir            string
		includeDataset bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write chart images, a workbook and the dataset CSV to a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = a.conf.Export.Directory
			}
			if !cmd.Flags().Changed("dataset") {
				includeDataset = a.conf.Export.IncludeDataset
			}

			selection, err := sel.resolve(cmd, a.conf)
			if err != nil {
				return err
			}
			paths, err := exportReport(cmd.Context(), a.logger, a.table, selection, dir, includeDataset)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	sel.register(cmd)
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&includeDataset, "dataset", true, "include the full dataset in the workbook and as CSV")
	return cmd
}

func (a *app) newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print headline figures of the generated dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.SummaryFormat(cmd.OutOrStdout(), a.table.Summary())
		},
	}
}

// exportReport writes one PNG per aggregate, a dashboard PNG, a workbook and
// optionally the dataset CSV into dir, returning the written paths.
func exportReport(ctx context.Context, logger *zap.Logger, t *dataset.Table, sel report.Selection, dir string, includeDataset bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	model := report.RenderSelection(t, sel)
	var paths []string
	for _, aggregate := range model.Aggregates() {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path, err := render.SavePNG(dir, aggregate)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	dashboardPath := filepath.Join(dir, "dashboard.png")
	if err := writeFile(dashboardPath, func(f *os.File) error {
		return render.WriteDashboardPNG(f, model, 2*render.DefaultWidth, 2*render.DefaultHeight)
	}); err != nil {
		return paths, err
	}
	paths = append(paths, dashboardPath)

	built := report.Build(t, sel)
	workbookPath := filepath.Join(dir, "report.xlsx")
	if err := export.SaveXLSX(workbookPath, t, built, includeDataset); err != nil {
		return paths, err
	}
	paths = append(paths, workbookPath)

	if includeDataset {
		datasetPath := filepath.Join(dir, "automobile_sales.csv")
		if err := writeFile(datasetPath, func(f *os.File) error {
			return export.WriteDatasetCSV(f, t)
		}); err != nil {
			return paths, err
		}
		paths = append(paths, datasetPath)
	}

	logger.Info("report exported",
		zap.String("op", "main.export"),
		zap.Stringer("selection", sel),
		zap.String("dir", dir),
		zap.Int("files", len(paths)),
	)
	return paths, nil
}

func writeFile(path string, write func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
