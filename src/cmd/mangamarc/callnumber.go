package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mangamarc/src/internal/barcode"
	"mangamarc/src/internal/formatter"
	"mangamarc/src/internal/store"
)

func newCallNumberCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "callnumber <input>",
		Short: "Show the barcode and call number each record would receive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := store.ReadBooks(args[0], time.Now())
			if err != nil {
				return err
			}
			seq := barcode.NewSequence(opts.BarcodePrefix, opts.BarcodeStart)
			if start != "" {
				if seq, err = barcode.Parse(start); err != nil {
					return err
				}
			}
			for _, rec := range recs {
				code := seq.Next()
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", code, formatter.CallNumber(rec, code), rec.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start-barcode", "", "First barcode, e.g. T000001 (default from config)")
	return cmd
}
