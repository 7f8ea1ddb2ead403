package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"warehouse-picker-service/internal/adapters/repositories"
	"warehouse-picker-service/internal/adapters/spatial"
	"warehouse-picker-service/internal/domain"
	"warehouse-picker-service/internal/ports"
	"warehouse-picker-service/internal/services"

	"github.com/spf13/cobra"
)

type options struct {
	seedPath string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "picker",
		Short:         "Plan warehouse pick routes",
		Long:          `Order a pick list into a short visiting route with a nearest-neighbor heuristic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Operation timing lines are only useful when debugging.
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.seedPath, "seed", "s", "", "Catalog seed file (.json, .yaml); built-in catalog when empty")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(
		newCatalogCmd(opts),
		newRouteCmd(opts),
		newScoreCmd(opts),
		newNearbyCmd(opts),
		newSessionCmd(opts),
	)
	return root
}

// catalogLocations returns the seed file contents or the built-in warehouse.
func (o *options) catalogLocations() ([]*domain.Location, error) {
	if o.seedPath == "" {
		return domain.WarehouseLocations(), nil
	}
	seeds, err := repositories.LoadSeeds(o.seedPath)
	if err != nil {
		return nil, err
	}
	return repositories.SeedLocations(seeds), nil
}

func (o *options) repository() (ports.LocationRepository, error) {
	locs, err := o.catalogLocations()
	if err != nil {
		return nil, err
	}
	return repositories.NewMemoryLocationRepository(locs), nil
}

func newCatalogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List catalog locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locs, err := opts.catalogLocations()
			if err != nil {
				return err
			}
			cat, err := domain.NewCatalog(locs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, loc := range cat.Locations() {
				fmt.Fprintln(out, loc)
			}
			return nil
		},
	}
}

func newRouteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "route ITEM...",
		Short: "Calculate the pick route for the given items",
		Long:  `Visit the items starting from the first one given, always moving to the nearest unvisited item.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.repository()
			if err != nil {
				return err
			}

			plan, err := services.PlanPickRoute(cmd.Context(), services.PlanPickRequest{Items: args}, repo, nil)
			if errors.Is(err, domain.ErrTooFewItems) {
				return domain.ErrTooFewItems
			}
			if err != nil {
				return err
			}

			printRoute(cmd.OutOrStdout(), plan.Stops, plan.TotalDistance)
			return nil
		},
	}
}

func newScoreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "score ITEM...",
		Short: "Total distance of visiting the items in the given order",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.repository()
			if err != nil {
				return err
			}

			total, err := services.ScorePickOrder(cmd.Context(), args, repo)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total Distance: %.2f units\n", total)
			return nil
		},
	}
}

func newNearbyCmd(opts *options) *cobra.Command {
	var (
		x, y float64
		k    int
	)

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "Find the catalog items closest to a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if k < 1 {
				return fmt.Errorf("nearby: k must be at least 1, got %d", k)
			}
			if !isFinite(x) || !isFinite(y) {
				return fmt.Errorf("nearby: coordinates must be finite numbers, got (%v, %v)", x, y)
			}
			locs, err := opts.catalogLocations()
			if err != nil {
				return err
			}

			found, err := spatial.NewLocationIndex(locs).Nearest(x, y, k)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, loc := range found {
				fmt.Fprintf(out, "%s  distance=%.2f\n", loc, domain.NewLocation("", x, y).DistanceTo(loc))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "X coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "Y coordinate")
	cmd.Flags().IntVarP(&k, "neighbors", "k", 3, "Number of nearest items to list")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	return cmd
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
