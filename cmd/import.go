package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tupyy/parcm/internal/config"
)

func NewImportCommand(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "import <catalog.xlsx>",
		Short: "Import albums from an xlsx workbook into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := st.Album().ImportXLSX(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d albums from %s\n", color.GreenString("imported"), n, args[0])
			return nil
		},
	}
}
