package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
	"github.com/nicholasrokosz/vesta-revenue/internal/gateway"
	"github.com/nicholasrokosz/vesta-revenue/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "vesta-revenue",
	Short: "Revenue allocation and owner statements for short-term rentals",
	Long: `vesta-revenue splits booking revenue between the managing operator and the
property owner, reconciles channel-reported figures against the configured
fee/tax model, and rolls reservations up into monthly owner statements.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(statementCmd)
	rootCmd.AddCommand(ingestCmd)

	statementCmd.Flags().String("listing", "", "Path to the listing JSON file")
	statementCmd.Flags().String("revenue", "", "Path to the revenue ledger JSON file")
	statementCmd.Flags().String("expenses", "", "Path to the expenses CSV file")
	statementCmd.Flags().String("month", "", "Statement month (YYYY-MM)")
	for _, flag := range []string{"listing", "revenue", "expenses", "month"} {
		_ = statementCmd.MarkFlagRequired(flag)
	}

	ingestCmd.Flags().String("payload", "", "Path to the channel payload JSON file")
	ingestCmd.Flags().String("model", "", "Path to the business model TOML file")
	ingestCmd.Flags().String("channel", "", "Booking channel (airbnb or vrbo)")
	ingestCmd.Flags().String("reservation", "", "Reservation id the payload belongs to")
	for _, flag := range []string{"payload", "model", "channel", "reservation"} {
		_ = ingestCmd.MarkFlagRequired(flag)
	}
}

var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Generate a monthly owner statement",
	Long: `Generate the owner statement for one listing and one calendar month from a
revenue ledger JSON file and an expenses CSV file. The statement is written
to stdout as JSON.`,
	RunE: runStatement,
}

func runStatement(cmd *cobra.Command, args []string) error {
	listingPath, _ := cmd.Flags().GetString("listing")
	revenuePath, _ := cmd.Flags().GetString("revenue")
	expensePath, _ := cmd.Flags().GetString("expenses")
	monthStr, _ := cmd.Flags().GetString("month")

	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", monthStr, err)
	}

	repo := gateway.NewFileStatementRepository()
	uc := usecase.NewStatementUseCase(repo)

	statement, err := uc.Generate(context.Background(), listingPath, revenuePath, expensePath, month)
	if err != nil {
		return fmt.Errorf("statement generation failed: %w", err)
	}
	return printJSON(statement)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Reconcile a channel revenue payload into a revenue record",
	Long: `Map a channel-reported revenue payload onto the configured business model and
emit the normalized revenue record as JSON. Mismatches between reported and
recomputed totals are logged to stderr and do not block creation.`,
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	payloadPath, _ := cmd.Flags().GetString("payload")
	modelPath, _ := cmd.Flags().GetString("model")
	channel, _ := cmd.Flags().GetString("channel")
	reservationID, _ := cmd.Flags().GetString("reservation")

	payload, err := gateway.LoadChannelPayload(payloadPath)
	if err != nil {
		return err
	}
	model, err := gateway.LoadBusinessModel(modelPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	uc := usecase.NewChannelRevenueUseCase(logger)

	var revenue *domain.RevenueCreate
	switch domain.Channel(channel) {
	case domain.ChannelAirbnb:
		revenue, err = uc.ProcessAirbnbRevenue(reservationID, payload, model)
	case domain.ChannelVrbo:
		revenue, err = uc.ProcessVrboRevenue(reservationID, payload, model)
	default:
		return fmt.Errorf("ingest channel %q: %w", channel, domain.ErrUnknownChannel)
	}
	if err != nil {
		return err
	}
	return printJSON(revenue)
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
