package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// containerAttachCmd represents the container attach command
var containerAttachCmd = &cobra.Command{
	Use:   "attach <container-id> <value>...",
	Short: "Attach privileged data to a container",
	Long: `Submit a workflow request attaching privileged-data items to a
container by value. Items the container already references are skipped.

Example:
  pamctl container attach 4f2a root@db01 admin@web01`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		requester, _ := cmd.Flags().GetString("requester")

		if err := attachPrivileged(args[0], args[1:], requester); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to attach privileged data: %v\n", err)
			os.Exit(1)
		}
	},
}

// containerDetachCmd represents the container detach command
var containerDetachCmd = &cobra.Command{
	Use:   "detach <container-id> [value]...",
	Short: "Detach privileged data from a container",
	Long: `Submit a workflow request detaching privileged-data items from a
container by value. With --all, every item is detached.

Example:
  pamctl container detach 4f2a root@db01
  pamctl container detach 4f2a --all`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		selectAll, _ := cmd.Flags().GetBool("all")
		requester, _ := cmd.Flags().GetString("requester")

		if !selectAll && len(args) < 2 {
			fmt.Fprintln(os.Stderr, "error: provide values to detach or use --all")
			os.Exit(1)
		}

		if err := detachPrivileged(args[0], args[1:], selectAll, requester); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to detach privileged data: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	containerCmd.AddCommand(containerAttachCmd)
	containerCmd.AddCommand(containerDetachCmd)
	containerDetachCmd.Flags().Bool("all", false, "Detach every privileged-data item")
}

func attachPrivileged(containerID string, values []string, requester string) error {
	services, err := connectServices()
	if err != nil {
		return err
	}

	if err := services.orchestrator(requester).AddPrivilegedItems(containerID, values); err != nil {
		return err
	}

	fmt.Printf("Queued attachment of %d privileged item(s)\n", len(values))
	return nil
}

func detachPrivileged(containerID string, values []string, selectAll bool, requester string) error {
	services, err := connectServices()
	if err != nil {
		return err
	}

	if err := services.orchestrator(requester).RemovePrivilegedItems(containerID, values, selectAll); err != nil {
		return err
	}

	fmt.Println("Queued privileged data detachment")
	return nil
}
