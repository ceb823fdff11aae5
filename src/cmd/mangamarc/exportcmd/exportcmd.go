package exportcmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mangamarc/src/internal/barcode"
	"mangamarc/src/internal/book"
	"mangamarc/src/internal/config"
	"mangamarc/src/internal/formatter"
	"mangamarc/src/internal/log"
	"mangamarc/src/internal/store"
	"mangamarc/src/internal/volumes"
)

// now is swapped in tests to pin the 005/008 timestamps.
var now = time.Now

// New returns the export command that writes lookup results to a MARC file.
func New(options func() *config.Options) *cobra.Command {
	var (
		out, prefix, startBarcode, volumeSel, manifest string
		start                                          int
	)
	cmd := &cobra.Command{
		Use:   "export <input>",
		Short: "Export lookup results (YAML/JSON file or directory) to a MARC21 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options()
			recs, err := store.ReadBooks(args[0], now())
			if err != nil {
				return err
			}
			if volumeSel != "" {
				vols, err := volumes.Parse(volumeSel)
				if err != nil {
					return err
				}
				recs = filterVolumes(recs, vols)
			}

			seq := barcode.NewSequence(opts.BarcodePrefix, opts.BarcodeStart)
			if cmd.Flags().Changed("prefix") || cmd.Flags().Changed("start") {
				p, s := opts.BarcodePrefix, opts.BarcodeStart
				if cmd.Flags().Changed("prefix") {
					p = prefix
				}
				if cmd.Flags().Changed("start") {
					s = start
				}
				seq = barcode.NewSequence(p, s)
			}
			if startBarcode != "" {
				if seq, err = barcode.Parse(startBarcode); err != nil {
					return err
				}
			}
			output := out
			if output == "" {
				output = opts.Output
			}

			assigned, err := store.WriteMARC(output, recs, seq,
				formatter.WithClock(now),
				formatter.WithAgency(opts.Agency),
				formatter.WithLocation(opts.Location),
				formatter.WithCollection(opts.Collection),
			)
			if err != nil {
				return err
			}
			for _, a := range assigned {
				if len(a.Warnings) > 0 {
					log.Warn("record exported with warnings",
						zap.String("barcode", a.Barcode),
						zap.String("title", a.Title),
						zap.Strings("warnings", a.Warnings))
				}
			}
			if manifest != "" {
				if err := store.WriteManifest(manifest, assigned); err != nil {
					return err
				}
			}
			log.Info("export finished", zap.Int("records", len(assigned)), zap.String("output", output))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", len(assigned), output)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output MARC file (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Holding barcode prefix (default from config)")
	cmd.Flags().IntVar(&start, "start", 1, "First holding barcode number (default from config)")
	cmd.Flags().StringVar(&startBarcode, "start-barcode", "", "First barcode such as T000001; overrides --prefix/--start")
	cmd.Flags().StringVar(&volumeSel, "volumes", "", "Only export these volumes, e.g. 1-5,7")
	cmd.Flags().StringVar(&manifest, "manifest", "", "Also write a JSON manifest of barcode assignments")
	return cmd
}

// filterVolumes keeps records whose volume number is in vols, preserving order.
func filterVolumes(recs []book.Record, vols []int) []book.Record {
	out := make([]book.Record, 0, len(recs))
	for _, r := range recs {
		if volumes.Contains(vols, r.VolumeNumber) {
			out = append(out, r)
		}
	}
	return out
}
