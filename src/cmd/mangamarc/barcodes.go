package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mangamarc/src/internal/barcode"
)

func newBarcodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "barcodes <start> <count>",
		Short: "Print a run of sequential holding barcodes (e.g. barcodes T000001 10)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[1])
			if err != nil || count < 0 {
				return fmt.Errorf("invalid count %q", args[1])
			}
			codes, err := barcode.Generate(args[0], count)
			if err != nil {
				return err
			}
			for _, c := range codes {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), c); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
