package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func contactFormsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contact-forms",
		Short: "List contact form submissions, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			forms, err := a.client.GetContactForms(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(forms))
			for _, f := range forms {
				rows = append(rows, []string{
					f.SubmittedAt.Local().Format(time.DateTime),
					f.Name,
					f.Email,
					f.Subject,
					f.ID,
				})
			}
			return a.render(cmd.OutOrStdout(), forms, []string{"SUBMITTED", "NAME", "EMAIL", "SUBJECT", "ID"}, rows)
		},
	}
}
