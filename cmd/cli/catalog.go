package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type catalogEntryJSON struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func NewCatalogCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List purchasable items and their unit prices",
		Args:  cobra.NoArgs,
		RunE: run(flags, func(ctx context.Context, cmd *cobra.Command, a *app) error {
			prices, err := a.catalogRepository().GetCatalog()
			if err != nil {
				return err
			}
			entries := make([]catalogEntryJSON, 0, prices.Len())
			for _, name := range prices.Names() {
				price, _ := prices.Price(name)
				entries = append(entries, catalogEntryJSON{Name: name, Price: price})
			}

			if flags.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), struct {
					Items []catalogEntryJSON `json:"items"`
				}{Items: entries})
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", e.Name, e.Price.StringFixed(2))
			}
			return nil
		}),
	}
}
