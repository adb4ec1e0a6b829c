package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/golewis/internal/config"
	"github.com/rmera/golewis/ptable"
)

func newElementCommand(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "element [SYMBOL...]",
		Short: "Show periodic table data",
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols := args
			if all {
				symbols = a.table.Symbols()
			}
			if len(symbols) == 0 {
				return fmt.Errorf("no symbols given (use --all for the whole table)")
			}
			elements := make([]ptable.Element, 0, len(symbols))
			for _, s := range symbols {
				e, err := a.table.Lookup(s)
				if err != nil {
					return err
				}
				elements = append(elements, e)
			}
			out := cmd.OutOrStdout()
			if a.cfg.Output.Format == config.FormatJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(elements)
			}
			for _, e := range elements {
				if _, err := fmt.Fprintln(out, e); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "show every element in the table")
	return cmd
}
