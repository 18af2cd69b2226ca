package rundemo

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vignesh-goutham/solid/pkg/config"
	"github.com/vignesh-goutham/solid/pkg/demos"
	"github.com/vignesh-goutham/solid/pkg/engine"
	"github.com/vignesh-goutham/solid/pkg/logger"
	"github.com/vignesh-goutham/solid/pkg/report"
)

type options struct {
	names        []string
	locale       string
	method       string
	amount       string
	storeAmount  string
	medicalLeave bool
	retired      bool
	format       string
	envFile      string
}

// NewRunDemoCmd creates the run-demo command
func NewRunDemoCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "run-demo",
		Short: "Run one or more demos",
		Long: `Run demos by name, in the order given.
Available demos: ` + strings.Join(demos.Names, ", "),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.names, "name", "n", nil, "Name of the demo to run (required, repeatable)")
	flags.StringVar(&opts.locale, "locale", "", "Greeting locale, e.g. en or fr-CA")
	flags.StringVar(&opts.method, "method", "", "Payment method: paypal or googlepay")
	flags.StringVar(&opts.amount, "amount", "0", "Amount held by the payment method")
	flags.StringVar(&opts.storeAmount, "store-amount", "0", "Amount the store is created with")
	flags.BoolVar(&opts.medicalLeave, "medical-leave", false, "Seed the employee as on medical leave")
	flags.BoolVar(&opts.retired, "retired", false, "Seed the employee as retired")
	flags.StringVarP(&opts.format, "format", "f", "", "Report format: text, json or yaml")
	flags.StringVar(&opts.envFile, "env-file", ".env", "Optional .env file to load")
	cmd.MarkFlagRequired("name")

	return cmd
}

func runDemo(cmd *cobra.Command, opts *options) error {
	cfg := config.Load(opts.envFile)

	log, err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	amount, err := decimal.NewFromString(opts.amount)
	if err != nil {
		return fmt.Errorf("invalid --amount %q: %w", opts.amount, err)
	}
	storeAmount, err := decimal.NewFromString(opts.storeAmount)
	if err != nil {
		return fmt.Errorf("invalid --store-amount %q: %w", opts.storeAmount, err)
	}

	demoOpts := demos.Options{
		Locale:       firstNonEmpty(opts.locale, cfg.Locale),
		Method:       firstNonEmpty(opts.method, cfg.PaymentMethod),
		Amount:       amount,
		StoreAmount:  storeAmount,
		MedicalLeave: opts.medicalLeave,
		Retired:      opts.retired,
		Log:          log,
	}

	var list []demos.Demo
	for _, name := range opts.names {
		d, err := demos.ByName(name, demoOpts)
		if err != nil {
			return err
		}
		list = append(list, d)
	}

	reporter := report.NewWriter(cmd.OutOrStdout(), firstNonEmpty(opts.format, cfg.ReportFormat))
	eng := engine.NewEngine(list, reporter)

	log.Debugf("Running demos: %s", strings.Join(opts.names, ", "))
	if _, err := eng.Run(cmd.Context()); err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
