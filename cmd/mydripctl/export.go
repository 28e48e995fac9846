package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"mydrip/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the wardrobe to a portable JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			env, err := newEnv()
			if err != nil {
				return err
			}

			doc, err := env.profile.Export(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "export failed")
			}

			if output == "" {
				output = doc.SuggestedFilename()
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to encode document")
			}
			data = append(data, '\n')

			if err := os.WriteFile(output, data, 0644); err != nil {
				return errors.Wrapf(err, "failed to write %s", output)
			}

			checksum, err := util.FileChecksum(output)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d items and %d outfits to %s (%s) in %s\n",
				doc.Stats.TotalItems, doc.Stats.TotalOutfits, output,
				util.FormatBytes(int64(len(data))), util.FormatDuration(time.Since(start)))
			fmt.Printf("SHA256: %s\n", checksum)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to the document's suggested name)")

	return cmd
}
