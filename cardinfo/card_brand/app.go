package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/alovak/cardbrand/internal/brand"
	"github.com/alovak/cardbrand/internal/pan"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/exp/slog"
)

// sampleNumbers are classified when no numbers are passed on the command line.
var sampleNumbers = []string{
	"4999999999999",
	"4123456789012345",
	"5212345678901234",
	"2225123456789012",
	"371234567890123",
	"6011123456789012",
	"6450123456789012",
	"6062821234567890",
	"5067123456789012",
	"9876543210987654",
}

// Result is one classified card as it appears in the report.
type Result struct {
	Number string `json:"number"`
	Brand  string `json:"brand"`
	Key    string `json:"key"`
}

// App classifies card numbers and writes a report to out.
type App struct {
	logger *slog.Logger
	config *Config
	out    io.Writer
}

func NewApp(logger *slog.Logger, config *Config, out io.Writer) *App {
	logger = logger.With(slog.String("app", "card_brand"), slog.String("run_id", uuid.New().String()))

	if config == nil {
		config = DefaultConfig()
	}

	return &App{
		logger: logger,
		config: config,
		out:    out,
	}
}

// Run classifies numbers in order and renders them in the configured format.
func (a *App) Run(numbers []string) error {
	results := a.Classify(numbers)
	if err := a.report(results); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Classify resolves the brand of each number, keeping input order.
func (a *App) Classify(numbers []string) []Result {
	results := make([]Result, 0, len(numbers))
	unknown := 0
	for _, n := range numbers {
		b, rule, ok := brand.Explain(n)
		if !ok {
			unknown++
		}
		// never log the full PAN
		a.logger.Debug("classified card",
			slog.String("card", pan.Mask(n)),
			slog.String("brand", b.Key()),
			slog.String("rule", rule.Description),
		)

		shown := n
		if a.config.Mask {
			shown = pan.Mask(n)
		}
		results = append(results, Result{
			Number: shown,
			Brand:  brand.Label(b, a.config.Lang),
			Key:    b.Key(),
		})
	}
	a.logger.Info("classification finished", slog.Int("cards", len(results)), slog.Int("unknown", unknown))
	return results
}

func (a *App) report(results []Result) error {
	switch a.config.Format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "table":
		t := table.NewWriter()
		t.SetOutputMirror(a.out)
		t.AppendHeader(table.Row{"Card", "Brand", "Key"})
		for _, r := range results {
			t.AppendRow(table.Row{r.Number, r.Brand, r.Key})
		}
		t.Render()
		return nil
	case "text":
		for _, r := range results {
			if _, err := fmt.Fprintf(a.out, "Card %s -> Brand: %s\n", r.Number, r.Brand); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %q", errUnsupportedFormat, a.config.Format)
}

// PrintRules renders the rule table in evaluation order.
func (a *App) PrintRules() {
	t := table.NewWriter()
	t.SetOutputMirror(a.out)
	t.AppendHeader(table.Row{"#", "Brand", "Rule"})
	for i, r := range brand.Rules() {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), r.Brand.String(), r.Description})
	}
	t.Render()
}
