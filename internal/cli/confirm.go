package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errPixRejected = errors.New("pix not completed")

func confirmCmd(rt *deps) *cobra.Command {
	var amount int64
	var key string

	c := &cobra.Command{
		Use:   "confirm",
		Short: "Confirm a single Pix transfer and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pix, err := newPixController(rt)
			if err != nil {
				return err
			}

			res := pix.ConfirmPix(cmd.Context(), amount, key)
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)

			if !res.Outcome.IsSuccess() {
				return errPixRejected
			}
			return nil
		},
	}

	c.Flags().Int64VarP(&amount, "amount", "a", 2000, "Amount in cents")
	c.Flags().StringVarP(&key, "key", "k", "abc123", "Pix key of the payee")
	return c
}
