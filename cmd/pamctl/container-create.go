package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/provisioning"
)

// containerCreateCmd represents the container create command
var containerCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new container",
	Long: `Submit a workflow request creating a new container on an application.

The container name must be unique among the application's containers.

Example:
  pamctl container create Finance-Safe --application "CyberArk PAM"
  pamctl container create Finance-Safe --application "CyberArk PAM" --display-name "Finance Safe"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application, _ := cmd.Flags().GetString("application")
		displayName, _ := cmd.Flags().GetString("display-name")
		requester, _ := cmd.Flags().GetString("requester")

		if err := createContainer(args[0], application, displayName, requester); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create container: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	containerCmd.AddCommand(containerCreateCmd)
	containerCreateCmd.Flags().StringP("application", "a", "", "Application to create the container on")
	_ = containerCreateCmd.MarkFlagRequired("application")
	containerCreateCmd.Flags().String("display-name", "", "Display name for the container")
}

func createContainer(name, application, displayName, requester string) error {
	services, err := connectServices()
	if err != nil {
		return err
	}

	err = services.orchestrator(requester).CreateContainer(provisioning.ContainerSpec{
		Application: application,
		Name:        name,
		DisplayName: displayName,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Queued creation of container %s on %s\n", name, application)
	return nil
}
