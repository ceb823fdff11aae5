package verifycmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mangamarc/src/internal/book"
	"mangamarc/src/internal/log"
	"mangamarc/src/internal/store"
)

var now = time.Now

type result struct {
	file   string
	entry  int
	rec    book.Record
	reason string
}

func (r result) failed(strict bool) bool {
	return r.reason != "" || (strict && len(r.rec.Warnings) > 0)
}

// New returns the verify command which checks lookup files before export.
func New() *cobra.Command {
	var strict bool
	var detail bool
	cmd := &cobra.Command{
		Use:   "verify <input>...",
		Short: "Check lookup files for missing required fields and suspicious values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []result
			for _, path := range args {
				raws, err := store.ReadRaw(path)
				if err != nil {
					return err
				}
				for i, raw := range raws {
					rec := book.Normalize(raw, now())
					res := result{file: path, entry: i + 1, rec: rec}
					if err := rec.Validate(); err != nil {
						res.reason = err.Error()
					}
					results = append(results, res)
				}
			}
			renderTable(cmd, results, strict)
			if detail {
				renderWarnings(cmd, results)
			}
			failed := 0
			for _, r := range results {
				if r.failed(strict) {
					failed++
					log.Warn("verification failed", zap.String("file", r.file), zap.Int("entry", r.entry), zap.String("reason", r.reason), zap.Strings("warnings", r.rec.Warnings))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d records failed verification", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat records with warnings as failures")
	cmd.Flags().BoolVar(&detail, "detail", false, "List each warning below the table")
	return cmd
}

func renderTable(cmd *cobra.Command, results []result, strict bool) {
	headers := []string{"file", "entry", "volume", "title", "status", "warnings"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "ok"
		switch {
		case r.reason != "":
			status = r.reason
		case r.failed(strict):
			status = "warnings"
		}
		rows = append(rows, []string{r.file, strconv.Itoa(r.entry), strconv.Itoa(r.rec.VolumeNumber), r.rec.Title, status, strconv.Itoa(len(r.rec.Warnings))})
	}
	widths := computeColWidths(headers, rows)
	writeColumns(cmd, headers, widths)
	writeSeparator(cmd, widths)
	for _, r := range rows {
		writeColumns(cmd, r, widths)
	}
}

func renderWarnings(cmd *cobra.Command, results []result) {
	for _, r := range results {
		for _, w := range r.rec.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d: %s\n", r.file, r.entry, w)
		}
	}
}

func computeColWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i := range headers {
			if i < len(r) {
				if l := len(r[i]); l > widths[i] {
					widths[i] = l
				}
			}
		}
	}
	return widths
}

func writeSeparator(cmd *cobra.Command, widths []int) {
	cols := make([]string, len(widths))
	for i, w := range widths {
		cols[i] = strings.Repeat("-", w)
	}
	writeColumns(cmd, cols, widths)
}

func writeColumns(cmd *cobra.Command, cols []string, widths []int) {
	for i, w := range widths {
		val := ""
		if i < len(cols) {
			val = cols[i]
		}
		if i == len(widths)-1 {
			fmt.Fprint(cmd.OutOrStdout(), val)
			break
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-*s  ", w, val)
	}
	fmt.Fprint(cmd.OutOrStdout(), "\n")
}
