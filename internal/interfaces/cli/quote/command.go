package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"cinepass/internal/domain/subscription"
	vo "cinepass/internal/domain/subscription/valueobjects"
	"cinepass/internal/infrastructure/config"
	"cinepass/internal/shared/logger"
	"cinepass/internal/shared/utils"
)

var (
	formulaFlag    string
	durationFlag   int
	startFlag      string
	adultsFlag     int
	childrenFlag   int
	recordBookFlag bool
	outputFlag     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a subscription quote",
		Long:  `Compute the prorated first payment and the total cost of a membership over its commitment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&formulaFlag, "formula", "f", "", "Formula identifier (e.g. weekend, family, 26-plus)")
	cmd.Flags().IntVarP(&durationFlag, "duration", "d", 1, "Commitment duration in months (1, 6 or 12)")
	cmd.Flags().StringVarP(&startFlag, "start", "s", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&adultsFlag, "adults", 1, "Adults covered by the subscription")
	cmd.Flags().IntVar(&childrenFlag, "children", 0, "Children covered by the subscription")
	cmd.Flags().BoolVar(&recordBookFlag, "record-book", false, "Household record book presented (family formula)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format: text or json (default from config)")

	_ = cmd.MarkFlagRequired("formula")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

type request struct {
	Formula  string `flag:"formula" validate:"required"`
	Duration int    `flag:"duration" validate:"required"`
	Start    string `flag:"start" validate:"required,datetime=2006-01-02"`
	Adults   int    `flag:"adults" validate:"gte=0"`
	Children int    `flag:"children" validate:"gte=0"`
}

// Quote is the rendered pricing result. Amounts are fixed to two
// decimal places.
type Quote struct {
	Formula           string `json:"formula"`
	Label             string `json:"label"`
	DurationMonths    int    `json:"duration_months"`
	StartDate         string `json:"start_date"`
	MonthlyFee        string `json:"monthly_fee"`
	FirstPayment      string `json:"first_payment"`
	TotalCost         string `json:"total_cost"`
	TwelveMonthOutlay string `json:"twelve_month_outlay"`
	Summary           string `json:"summary"`
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	req := request{
		Formula:  formulaFlag,
		Duration: durationFlag,
		Start:    startFlag,
		Adults:   adultsFlag,
		Children: childrenFlag,
	}

	quote, err := buildQuote(req, recordBookFlag)
	if err != nil {
		return err
	}

	output := outputFlag
	if output == "" {
		output = cfg.Quote.Output
	}

	switch output {
	case "json":
		return renderJSON(cmd.OutOrStdout(), quote)
	case "text", "":
		renderText(cmd.OutOrStdout(), quote, cfg.Quote.Currency)
		return nil
	default:
		return fmt.Errorf("unknown output format: %q", output)
	}
}

func buildQuote(req request, recordBookPresented bool) (*Quote, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	formula, err := vo.ParseFormula(req.Formula)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}

	sub, err := subscription.NewHouseholdSubscription(formula, req.Duration, startDate,
		req.Adults, req.Children, recordBookPresented)
	if err != nil {
		return nil, err
	}

	logger.Debug("quote computed",
		"formula", formula.String(),
		"duration", sub.Commitment().String(),
		"start", req.Start)

	first, err := sub.FirstPayment()
	if err != nil {
		return nil, err
	}
	total, err := sub.TotalCost()
	if err != nil {
		return nil, err
	}
	outlay, err := sub.TwelveMonthOutlay()
	if err != nil {
		return nil, err
	}

	return &Quote{
		Formula:           formula.String(),
		Label:             formula.Label(),
		DurationMonths:    sub.Commitment().Months(),
		StartDate:         startDate.Format("2006-01-02"),
		MonthlyFee:        sub.MonthlyFee().StringFixed(2),
		FirstPayment:      first.StringFixed(2),
		TotalCost:         total.StringFixed(2),
		TwelveMonthOutlay: outlay.StringFixed(2),
		Summary:           sub.String(),
	}, nil
}

func renderText(w io.Writer, q *Quote, currency string) {
	fmt.Fprintln(w, q.Summary)
	fmt.Fprintf(w, "Total over the commitment: %s%s\n", q.TotalCost, currency)
	fmt.Fprintf(w, "Reference 12-month outlay: %s%s\n", q.TwelveMonthOutlay, currency)
}

func renderJSON(w io.Writer, q *Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(q)
}
