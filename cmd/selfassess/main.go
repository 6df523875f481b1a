package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/calculation"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/config"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/ledger"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/observability"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/output"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/rates"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/server"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/taxyear"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "selfassess",
	Short: "UK Self Assessment tax calculator",
	Long:  "Self-assessment tax and National Insurance calculation engine for UK sole traders",
}

func newRegistry(cmd *cobra.Command) (*rates.Registry, error) {
	registry := rates.NewRegistry()
	ratesFile, _ := cmd.Flags().GetString("rates")
	if ratesFile != "" {
		if err := registry.LoadFile(ratesFile); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

var reportCmd = &cobra.Command{
	Use:   "report [ledger-file]",
	Short: "Generate a self-assessment report from a ledger CSV",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := newRegistry(cmd)
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngine(registry, ledger.NewCSVLedger(args[0]))
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		accountKey, _ := cmd.Flags().GetString("account")
		taxYearID, _ := cmd.Flags().GetString("tax-year")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		quarter, _ := cmd.Flags().GetInt("quarter")

		ctx := context.Background()
		var report *domain.SelfAssessmentReport
		switch {
		case taxYearID != "":
			report, err = engine.GenerateForTaxYear(ctx, accountKey, taxYearID)
		case month != 0:
			report, err = engine.GenerateForMonth(ctx, accountKey, year, month)
		case quarter != 0:
			report, err = engine.GenerateForQuarter(ctx, accountKey, year, quarter)
		case start != "" || end != "":
			report, err = engine.GenerateForDateRange(ctx, accountKey, start, end)
		default:
			log.Fatal("specify --tax-year, --month, --quarter or --start/--end")
		}
		if err != nil {
			log.Fatal(err)
		}

		formatName, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(formatName)
		if f == nil {
			log.Fatalf("unsupported format %q (available: %v)", formatName, output.Names())
		}
		data, err := f.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var taxYearCmd = &cobra.Command{
	Use:   "tax-year [date]",
	Short: "Resolve a date to its UK tax year",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, err := taxyear.ParseDate("date", args[0])
		if err != nil {
			log.Fatal(err)
		}
		id := taxyear.ForDate(d)
		start, end, _ := taxyear.Bounds(id)
		fmt.Printf("%s falls in tax year %s (%s to %s)\n",
			args[0], id, start.Format(taxyear.DateLayout), end.Format(taxyear.DateLayout))
	},
}

var deadlinesCmd = &cobra.Command{
	Use:   "deadlines [tax-year]",
	Short: "Show the statutory deadlines for a tax year",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		set, err := calculation.NewDeadlineCalculator().Calculate(args[0])
		if err != nil {
			log.Fatal(err)
		}
		lang, _ := cmd.Flags().GetString("lang")
		for _, d := range set.Deadlines {
			desc := d.Descriptions[lang]
			if desc == "" {
				desc = d.Descriptions["en"]
			}
			fmt.Printf("%s  %s\n", d.Date.Format(taxyear.DateLayout), desc)
		}
	},
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "List the published rate table years",
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := newRegistry(cmd)
		if err != nil {
			log.Fatal(err)
		}
		for _, y := range registry.Years() {
			fmt.Println(y)
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the report API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		cfg := config.Load()

		logger := observability.NewLogger(cfg.LogLevel)
		defer logger.Sync()

		registry := rates.NewRegistry()
		if cfg.RatesPath != "" {
			if err := registry.LoadFile(cfg.RatesPath); err != nil {
				logger.Fatal("failed to load rates file", zap.Error(err))
			}
		}

		metrics := observability.NewMetrics()
		engine := calculation.NewEngine(registry, ledger.NewCSVLedger(cfg.LedgerPath))
		engine.SetLogger(observability.EngineLogger{S: logger.Sugar()})

		router := server.NewRouter(engine, registry, metrics, logger)
		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}

		go func() {
			logger.Info("report server listening",
				zap.Int("port", cfg.Port),
				zap.String("ledger", cfg.LedgerPath),
			)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Fatal("server failed", zap.Error(err))
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "selfassess %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

func init() {
	reportCmd.Flags().String("account", "default", "ledger account key")
	reportCmd.Flags().String("tax-year", "", "report a full tax year, e.g. 2025-26")
	reportCmd.Flags().Int("year", 0, "calendar year for --month/--quarter")
	reportCmd.Flags().Int("month", 0, "report a calendar month (1-12)")
	reportCmd.Flags().Int("quarter", 0, "report a calendar quarter (1-4)")
	reportCmd.Flags().String("start", "", "range start date YYYY-MM-DD")
	reportCmd.Flags().String("end", "", "range end date YYYY-MM-DD")
	reportCmd.Flags().String("format", "console", "output format: console, json or csv")
	reportCmd.Flags().String("rates", "", "additional rate tables YAML file")
	reportCmd.Flags().Bool("debug", false, "enable debug logging")

	deadlinesCmd.Flags().String("lang", "en", "description language (en or tr)")
	ratesCmd.Flags().String("rates", "", "additional rate tables YAML file")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(taxYearCmd)
	rootCmd.AddCommand(deadlinesCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
