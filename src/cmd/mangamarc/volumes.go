package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mangamarc/src/internal/volumes"
)

func newVolumesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volumes <range>",
		Short: "Expand a volume selection such as 1-5,7,17-18-19",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vols, err := volumes.Parse(args[0])
			if err != nil {
				return err
			}
			out := make([]string, 0, len(vols))
			for _, v := range vols {
				out = append(out, strconv.Itoa(v))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, ","))
			return err
		},
	}
}
