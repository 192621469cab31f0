package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func healthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			h, err := a.client.HealthCheck(ctx)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), h,
				[]string{"STATUS", "SERVICE", "BACKEND"},
				[][]string{{h.Status, h.Service, a.client.BaseURL}})
		},
	}
}

func sportsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sports",
		Short: "List sports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			sports, err := a.client.GetSports(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(sports))
			for _, s := range sports {
				rows = append(rows, []string{s.ID, s.Name, s.CoachingLabel(), strconv.Itoa(len(s.Facilities))})
			}
			return a.render(cmd.OutOrStdout(), sports, []string{"ID", "NAME", "COACHING", "FACILITIES"}, rows)
		},
	}
}

func facilitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "facilities",
		Short: "List facilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			facilities, err := a.client.GetFacilities(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(facilities))
			for _, f := range facilities {
				rows = append(rows, []string{f.ID, f.Name, f.Location, strconv.Itoa(len(f.Features))})
			}
			return a.render(cmd.OutOrStdout(), facilities, []string{"ID", "NAME", "LOCATION", "FEATURES"}, rows)
		},
	}
}

func coachesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "coaches",
		Short: "List coaches and founders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			coaches, err := a.client.GetCoaches(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(coaches))
			for _, c := range coaches {
				rows = append(rows, []string{c.ID, c.Name, c.Designation, strings.Join(c.Sports, ", ")})
			}
			return a.render(cmd.OutOrStdout(), coaches, []string{"ID", "NAME", "DESIGNATION", "SPORTS"}, rows)
		},
	}
}

func branchesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			branches, err := a.client.GetBranches(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(branches))
			for _, b := range branches {
				rows = append(rows, []string{b.ID, b.Name, b.Location, b.ContactInfo.Phone})
			}
			return a.render(cmd.OutOrStdout(), branches, []string{"ID", "NAME", "LOCATION", "PHONE"}, rows)
		},
	}
}
