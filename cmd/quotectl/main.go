// quotectl prices and checks funeral quotes offline.
//
// Usage:
//
//	quotectl price --catalog configs/catalog.yaml --selection selection.yaml
//	quotectl validate --catalog configs/catalog.yaml
//	quotectl decode --file print_data.json
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"funeral_quote/internal/adapter/persistence/repository"
	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/domain/pricing"
	"funeral_quote/internal/infrastructure/config"
	"funeral_quote/internal/infrastructure/logger"
	"funeral_quote/internal/usecase"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

var version = "dev"

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:           "quotectl",
		Usage:          "Price, validate and decode funeral quotes",
		Version:        version,
		Writer:         out,
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Configure(c.String("log-level"), "text")
			return nil
		},
		Commands: []*cli.Command{
			priceCommand(),
			validateCommand(),
			decodeCommand(),
		},
	}
}

var taxRateFlag = &cli.StringFlag{
	Name:  "tax-rate",
	Usage: "Consumption tax rate, e.g. 0.10 (defaults to TAX_RATE or 0.10)",
}

func priceCommand() *cli.Command {
	return &cli.Command{
		Name:  "price",
		Usage: "Price a selection against a catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog", Aliases: []string{"c"}, Usage: "Catalog YAML file", Required: true},
			&cli.StringFlag{Name: "selection", Aliases: []string{"s"}, Usage: "Selection YAML file", Required: true},
			taxRateFlag,
		},
		Action: func(c *cli.Context) error {
			catalog, err := loadCatalog(c.String("catalog"))
			if err != nil {
				return err
			}
			raw, err := os.ReadFile(c.String("selection"))
			if err != nil {
				return err
			}
			state, err := parseSelection(catalog, raw)
			if err != nil {
				return fmt.Errorf("%s: %w", c.String("selection"), err)
			}
			policy, err := taxPolicy(c)
			if err != nil {
				return err
			}
			plan, ok := catalog.PlanByID(state.PlanID)
			if !ok {
				return cli.Exit(fmt.Sprintf("plan %q is not in the catalog", state.PlanID), 1)
			}

			w := c.App.Writer
			fmt.Fprintf(w, "%s  %s\n", plan.Name, pricing.AttendeeLabel(catalog, state))
			renderDocument(w, plan, pricing.ComputeTaxSplitTotals(plan, catalog, state, policy))
			fmt.Fprintf(w, "live total (untaxed): %s\n", yen(pricing.ComputeGrandTotal(plan, catalog, state)))
			return nil
		},
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Report catalog authoring mistakes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog", Aliases: []string{"c"}, Usage: "Catalog YAML file", Required: true},
		},
		Action: func(c *cli.Context) error {
			catalog, err := loadCatalog(c.String("catalog"))
			if err != nil {
				return err
			}
			findings := usecase.ValidateCatalog(catalog)
			for _, f := range findings {
				fmt.Fprintln(c.App.Writer, f)
			}
			if len(findings) > 0 {
				return cli.Exit(fmt.Sprintf("%d finding(s)", len(findings)), 1)
			}
			fmt.Fprintf(c.App.Writer, "ok: %d plans, %d items\n", len(catalog.Plans), len(catalog.Items))
			return nil
		},
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "Decode a print payload and show the document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "Print payload file", Required: true},
			taxRateFlag,
		},
		Action: func(c *cli.Context) error {
			raw, err := os.ReadFile(c.String("file"))
			if err != nil {
				return err
			}
			policy, err := taxPolicy(c)
			if err != nil {
				return err
			}
			doc, err := usecase.BuildPrintDocument(string(raw), policy)
			if err != nil {
				return cli.Exit("nothing to print", 1)
			}

			w := c.App.Writer
			snap := doc.Snapshot
			fmt.Fprintf(w, "%s", snap.DocumentType)
			if snap.EstimateID != nil {
				fmt.Fprintf(w, " #%d", *snap.EstimateID)
			}
			fmt.Fprintf(w, "  %s  %s\n", snap.Plan.Name, snap.AttendeeLabel)
			keys := make([]string, 0, len(snap.CustomerInfo))
			for k := range snap.CustomerInfo {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(w, "%s: %v\n", k, snap.CustomerInfo[k])
			}
			renderDocument(w, snap.Plan, doc.Document)
			return nil
		},
	}
}

func loadCatalog(path string) (entities.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entities.Catalog{}, err
	}
	catalog, err := repository.ParseCatalogYAML(raw)
	if err != nil {
		return entities.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	for _, f := range usecase.ValidateCatalog(catalog) {
		log.Warnf("[catalog][cli] %s", f)
	}
	return catalog, nil
}

func taxPolicy(c *cli.Context) (pricing.TaxPolicy, error) {
	policy, err := config.TaxPolicyFromEnv()
	if err != nil {
		return pricing.TaxPolicy{}, err
	}
	if v := c.String("tax-rate"); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return pricing.TaxPolicy{}, fmt.Errorf("--tax-rate: %w", err)
		}
		policy.Rate = rate
	}
	return policy, nil
}

// selectionFile is the YAML form of a configuration. Keys of the grade and
// free-input maps are item ids.
type selectionFile struct {
	Category            entities.Category     `yaml:"category"`
	PlanID              entities.PlanID       `yaml:"plan_id"`
	AttendeeTier        entities.AttendeeTier `yaml:"attendee_tier"`
	CustomAttendeeCount string                `yaml:"custom_attendee_count"`
	SelectedOptions     []int                 `yaml:"selected_options"`
	SelectedGrades      map[int]string        `yaml:"selected_grades"`
	FreeInputValues     map[int]int64         `yaml:"free_input_values"`
}

// parseSelection replays the file through the selection state so category
// and plan changes apply the same resets as the API.
func parseSelection(catalog entities.Catalog, raw []byte) (*entities.SelectionState, error) {
	var f selectionFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	state := entities.NewSelectionState(catalog)
	if f.Category != "" {
		if !f.Category.Valid() {
			return nil, fmt.Errorf("unknown category %q", f.Category)
		}
		state.SetCategory(catalog, f.Category)
	}
	if f.PlanID != "" {
		state.SetPlan(catalog, f.PlanID)
	}
	if f.AttendeeTier != "" {
		if !f.AttendeeTier.Valid() {
			return nil, fmt.Errorf("unknown attendee tier %q", f.AttendeeTier)
		}
		state.SetAttendeeTier(f.AttendeeTier)
	}
	state.SetCustomAttendeeCount(f.CustomAttendeeCount)
	for _, id := range f.SelectedOptions {
		if !state.SelectedOptions.Has(id) {
			state.ToggleOption(id)
		}
	}
	for id, grade := range f.SelectedGrades {
		state.SetGrade(id, grade)
	}
	for id, v := range f.FreeInputValues {
		state.SetFreeInputValue(id, v)
	}
	return state, nil
}
