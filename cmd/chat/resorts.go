package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"snowboarding-assistant/internal/resort"
)

func newResortsCmd(verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resorts",
		Short: "Inspect the resort database",
	}
	cmd.AddCommand(newNearestCmd(verbose), newSeedCmd(verbose))
	return cmd
}

func newNearestCmd(verbose *bool) *cobra.Command {
	var (
		lat, lon float64
		filter   string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "List resorts closest to a point",
		Example: `  chat resorts nearest --lat 39.64 --lon -106.37
  chat resorts nearest --lat 39.1 --lon -120.1 --filter tahoe --limit 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), *verbose)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Resorts.Nearest(cmd.Context(), resort.NearestInput{Lat: lat, Lon: lon, Filter: filter, Limit: limit})
			if err != nil {
				return err
			}
			return printDistances(cmd, res.Resorts)
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter by name, region, state or country")
	cmd.Flags().IntVarP(&limit, "limit", "n", resort.DefaultLimit, "Number of resorts")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func newSeedCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the built-in resort table into the resort database",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), *verbose)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.Resorts.Seed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d resorts (%d total).\n", out.Inserted, out.Total)
			return nil
		},
	}
}

func printDistances(cmd *cobra.Command, ds []resort.Distance) error {
	if len(ds) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No resorts found.")
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tRESORT\tREGION\tMILES")
	for i, d := range ds {
		fmt.Fprintf(w, "%d\t%s\t%s, %s\t%.1f\n", i+1, d.Resort.Name, d.Resort.Region, d.Resort.State, d.Miles)
	}
	return w.Flush()
}
