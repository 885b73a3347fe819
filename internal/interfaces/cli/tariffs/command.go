package tariffs

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cinepass/internal/domain/subscription"
	vo "cinepass/internal/domain/subscription/valueobjects"
	"cinepass/internal/infrastructure/config"
	"cinepass/internal/shared/logger"
)

var durationFlag int

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tariffs",
		Short: "List the tariff catalog for a commitment duration",
		RunE:  run,
	}

	cmd.Flags().IntVarP(&durationFlag, "duration", "d", 1, "Commitment duration in months (1, 6 or 12)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	commitment, err := vo.NewCommitment(durationFlag)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), commitment, cfg.Quote.Currency)
}

func render(w io.Writer, commitment vo.Commitment, currency string) error {
	formulas, err := subscription.Formulas(commitment)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Formulas offered for a %s commitment:\n", commitment)
	for _, f := range formulas {
		tariff, err := subscription.TariffFor(f, commitment)
		if err != nil {
			return err
		}
		annual, err := subscription.AnnualReference(f)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "  %-24s %s/month  first payment %s / %s / %s / %s  yearly reference %s%s\n",
			f.Label(),
			tariff.MonthlyFee().StringFixed(2)+currency,
			tariff.Bracket(0).StringFixed(2),
			tariff.Bracket(1).StringFixed(2),
			tariff.Bracket(2).StringFixed(2),
			tariff.Bracket(3).StringFixed(2),
			annual.StringFixed(2), currency)
	}
	return nil
}
