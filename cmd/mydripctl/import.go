package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"mydrip/internal/domain/entity"
	"mydrip/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the wardrobe from a previously exported document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", path)
			}

			var doc *entity.ExportDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return errors.Wrap(err, "failed to decode document")
			}

			env, err := newEnv()
			if err != nil {
				return err
			}

			if err := env.profile.Import(cmd.Context(), doc); err != nil {
				return errors.Wrap(err, "import failed")
			}

			checksum, err := util.FileChecksum(path)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d items and %d outfits from %s (%s) in %s\n",
				len(doc.Items), len(doc.Outfits), path,
				util.FormatBytes(int64(len(data))), util.FormatDuration(time.Since(start)))
			fmt.Printf("SHA256: %s\n", checksum)

			return nil
		},
	}
}
