package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giovaniif/shopping-cart/use_cases/quote"
)

type quoteFlags struct {
	customerId string
	items      []string
	remove     []string
}

func NewQuoteCommand(flags *globalFlags) *cobra.Command {
	qFlags := &quoteFlags{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a cart built from the given lines",
		Long: `Open a cart for a customer, set each --item line in order, apply each
--remove and print the resulting cart and total.

Examples:
  cart quote --customer ABC12345XY-A --item item1=2 --item item2=5
  cart quote --customer ABC12345XY-A --item item1=2 --remove item1 --json`,
		Args: cobra.NoArgs,
		RunE: run(flags, func(ctx context.Context, cmd *cobra.Command, a *app) error {
			return runQuote(ctx, cmd, a, flags, qFlags)
		}),
	}
	cmd.Flags().StringVar(&qFlags.customerId, "customer", "", "Customer id, e.g. ABC12345XY-A")
	cmd.Flags().StringArrayVar(&qFlags.items, "item", nil, "Line as name=quantity (repeatable)")
	cmd.Flags().StringArrayVar(&qFlags.remove, "remove", nil, "Item to remove after adding lines (repeatable)")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}

func runQuote(ctx context.Context, cmd *cobra.Command, a *app, flags *globalFlags, qFlags *quoteFlags) error {
	lines := make([]quote.Line, 0, len(qFlags.items))
	for _, raw := range qFlags.items {
		line, err := ParseLine(raw)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	uc := quote.NewQuote(a.shopping(a.catalogRepository()))
	out, err := uc.Quote(ctx, quote.Input{
		CustomerId: qFlags.customerId,
		Lines:      lines,
		Remove:     qFlags.remove,
	})
	if err != nil {
		return err
	}

	if flags.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), quoteJSON{
			CartId:     out.CartId,
			CustomerId: out.CustomerId,
			Items:      out.Items,
			Total:      out.Total,
		})
	}
	printQuoteText(cmd, out)
	return nil
}

type quoteJSON struct {
	CartId     string         `json:"cartId"`
	CustomerId string         `json:"customerId"`
	Items      map[string]int `json:"items"`
	Total      float64        `json:"total"`
}

func printQuoteText(cmd *cobra.Command, out quote.Output) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Cart:     %s\n", out.CartId)
	fmt.Fprintf(w, "Customer: %s\n", out.CustomerId)
	names := make([]string, 0, len(out.Items))
	for name := range out.Items {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s x%d\n", name, out.Items[name])
	}
	fmt.Fprintf(w, "Total:    %.2f\n", out.Total)
}

// ParseLine parses "name=quantity".
func ParseLine(raw string) (quote.Line, error) {
	name, qty, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return quote.Line{}, fmt.Errorf("invalid item %q: expected name=quantity", raw)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil {
		return quote.Line{}, fmt.Errorf("invalid quantity in %q: %w", raw, err)
	}
	return quote.Line{Name: name, Quantity: quantity}, nil
}
