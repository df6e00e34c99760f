package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// containerRevokeCmd represents the container revoke command
var containerRevokeCmd = &cobra.Command{
	Use:   "revoke <container-id>",
	Short: "Revoke identities' direct access to a container",
	Long: `Submit workflow requests revoking identities' direct access to a
container.

With --all, every identity holding direct access is removed; --identity
flags then name exceptions to keep.

Identities that keep effective access through group membership are
reported, since the workflow only removes direct grants.

Example:
  pamctl container revoke 4f2a --identity alice
  pamctl container revoke 4f2a --all --identity admin`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		identityIDs, _ := cmd.Flags().GetStringArray("identity")
		selectAll, _ := cmd.Flags().GetBool("all")
		requester, _ := cmd.Flags().GetString("requester")

		if err := revokeAccess(args[0], identityIDs, selectAll, requester); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to revoke access: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	containerCmd.AddCommand(containerRevokeCmd)
	containerRevokeCmd.Flags().StringArray("identity", nil, "Identity to remove (repeatable); with --all, an exception to keep")
	containerRevokeCmd.Flags().Bool("all", false, "Remove every identity with direct access")
}

func revokeAccess(containerID string, identityIDs []string, selectAll bool, requester string) error {
	services, err := connectServices()
	if err != nil {
		return err
	}

	results, err := services.orchestrator(requester).RemoveIdentities(containerID, identityIDs, selectAll)
	if err != nil {
		return err
	}

	for _, result := range results {
		fmt.Printf("Workflow %s for %s: %s\n", result.RequestName, result.IdentityID, result.Status)
		for _, msg := range result.Messages {
			fmt.Printf("  %s: %s\n", msg.Type, msg.Text)
		}
		if result.HasEffectiveAccess {
			fmt.Printf("  %s keeps effective access through groups: %s\n",
				result.IdentityID, strings.Join(result.Groups, ", "))
		}
	}
	return nil
}
