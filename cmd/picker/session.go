package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"warehouse-picker-service/internal/domain"
	"warehouse-picker-service/internal/services"

	"github.com/spf13/cobra"
)

const sessionHelp = "Commands: add <name>, list, route, clear, catalog, help, quit"

func newSessionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Build a pick list interactively, one item at a time",
		Long: `Read commands from standard input, one per line. Items are added to the
pick list in order; "route" prints the optimized route and starts a new list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locs, err := opts.catalogLocations()
			if err != nil {
				return err
			}
			cat, err := domain.NewCatalog(locs)
			if err != nil {
				return err
			}
			return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), cat)
		},
	}
}

// runSession executes line commands against a single pick list until quit or EOF.
func runSession(in io.Reader, out io.Writer, cat *domain.Catalog) error {
	picks := domain.NewPickList()

	fmt.Fprintf(out, "Loaded %d catalog items.\n", cat.Len())
	fmt.Fprintln(out, sessionHelp)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		verb, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch strings.ToLower(verb) {
		case "":
		case "add":
			addToSession(out, cat, picks, arg)
		case "list":
			for i, loc := range picks.Items() {
				fmt.Fprintf(out, "%d. %s\n", i+1, loc)
			}
		case "route":
			if err := picks.Ready(); err != nil {
				fmt.Fprintln(out, "Add at least two items before calculating route.")
				continue
			}
			route := services.FindShortestRoute(picks.Items())
			fmt.Fprintln(out, "Calculating optimized route...")
			printRoute(out, route, services.CalculateTotalDistance(route))
			fmt.Fprintln(out, "-------------------------------------------")
			picks.Clear()
		case "clear":
			picks.Clear()
			fmt.Fprintln(out, "Pick list cleared.")
		case "catalog":
			for _, loc := range cat.Locations() {
				fmt.Fprintln(out, loc)
			}
		case "help":
			fmt.Fprintln(out, sessionHelp)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "Unknown command %q. %s\n", verb, sessionHelp)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("session: read input: %w", err)
	}
	return nil
}

func addToSession(out io.Writer, cat *domain.Catalog, picks *domain.PickList, name string) {
	loc, err := cat.Lookup(name)
	if err != nil {
		fmt.Fprintln(out, "Item not found!")
		return
	}

	err = picks.Add(loc)
	switch {
	case errors.Is(err, domain.ErrDuplicateItem):
		fmt.Fprintln(out, "Item already added!")
	case err != nil:
		fmt.Fprintf(out, "Could not add item: %v\n", err)
	default:
		fmt.Fprintf(out, "Added: %s\n", loc)
	}
}

func printRoute(out io.Writer, route []*domain.Location, total float64) {
	fmt.Fprintln(out, "Optimized Route:")
	for i, loc := range route {
		fmt.Fprintf(out, "%d. %s\n", i+1, loc)
	}
	fmt.Fprintf(out, "Total Distance: %.2f units\n", total)
}
