package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// containerGrantCmd represents the container grant command
var containerGrantCmd = &cobra.Command{
	Use:   "grant <container-id>",
	Short: "Grant an identity access to a container",
	Long: `Submit a workflow request granting an identity rights on a container
through one of its accounts.

Example:
  pamctl container grant 4f2a --identity alice --account link-1 --right "Use Accounts"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		identityID, _ := cmd.Flags().GetString("identity")
		linkID, _ := cmd.Flags().GetString("account")
		rights, _ := cmd.Flags().GetStringArray("right")
		requester, _ := cmd.Flags().GetString("requester")

		if err := grantAccess(args[0], identityID, linkID, rights, requester); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to grant access: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	containerCmd.AddCommand(containerGrantCmd)
	containerGrantCmd.Flags().String("identity", "", "Identity to grant access to")
	_ = containerGrantCmd.MarkFlagRequired("identity")
	containerGrantCmd.Flags().String("account", "", "Account (link) to carry the grant")
	_ = containerGrantCmd.MarkFlagRequired("account")
	containerGrantCmd.Flags().StringArray("right", nil, "Right to grant (repeatable)")
	_ = containerGrantCmd.MarkFlagRequired("right")
}

func grantAccess(containerID, identityID, linkID string, rights []string, requester string) error {
	services, err := connectServices()
	if err != nil {
		return err
	}

	results, err := services.orchestrator(requester).AddIdentities(
		containerID, map[string]string{identityID: linkID}, rights)
	if err != nil {
		return err
	}

	for _, result := range results {
		fmt.Printf("Workflow %s: %s\n", result.RequestName, result.Status)
		for _, msg := range result.Messages {
			fmt.Printf("  %s: %s\n", msg.Type, msg.Text)
		}
	}
	return nil
}
