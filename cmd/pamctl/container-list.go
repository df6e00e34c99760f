package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// containerListCmd represents the container list command
var containerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List PAM containers",
	Long: `List all PAM containers with their identity and group access counts.

Example:
  pamctl container list`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := listContainers(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list containers: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	containerCmd.AddCommand(containerListCmd)
}

func listContainers() error {
	services, err := connectServices()
	if err != nil {
		return err
	}

	targets, err := services.objects.FindTargets(nil)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tIDENTITIES\tGROUPS\tPRIVILEGED ITEMS")

	for _, target := range targets {
		if err := services.container.SetTarget(&target); err != nil {
			return err
		}

		identityCount, err := services.container.TotalAccessCount()
		if err != nil {
			return err
		}
		groupCount, err := services.container.GroupCount()
		if err != nil {
			return err
		}
		itemCount, err := services.container.PrivilegedItemCount()
		if err != nil {
			itemCount = 0
		}

		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
			target.ID, target.DisplayableName(), identityCount, groupCount, itemCount)
	}

	return w.Flush()
}
