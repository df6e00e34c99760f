package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/permission"
)

// containerShowCmd represents the container show command
var containerShowCmd = &cobra.Command{
	Use:   "show <container-id>",
	Short: "Show a container's access",
	Long: `Show a container's access counts, privileged data, and optionally the
permissions one identity holds on it.

Example:
  pamctl container show 4f2a
  pamctl container show 4f2a --identity alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		identityID, _ := cmd.Flags().GetString("identity")

		if err := showContainer(args[0], identityID); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show container: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	containerCmd.AddCommand(containerShowCmd)
	containerShowCmd.Flags().String("identity", "", "Show the permissions this identity holds")
}

func showContainer(containerID, identityID string) error {
	services, err := connectServices()
	if err != nil {
		return err
	}

	target, err := services.bindTarget(containerID)
	if err != nil {
		return err
	}
	svc := services.container

	displayName, err := svc.DisplayName()
	if err != nil {
		return err
	}

	identityCount, err := svc.TotalAccessCount()
	if err != nil {
		return err
	}
	groupCount, err := svc.GroupCount()
	if err != nil {
		return err
	}

	fmt.Printf("Container: %s (%s)\n", displayName, target.ID)
	fmt.Printf("Application: %s\n", svc.Application().Name)
	fmt.Printf("Identities with access: %d\n", identityCount)
	fmt.Printf("Groups with access: %d\n", groupCount)

	items, err := svc.PrivilegedItems()
	if err == nil && len(items) > 0 {
		fmt.Println("Privileged data:")
		for _, item := range items {
			fmt.Printf("  %s (%s)\n", item.Name, item.Type)
		}
	}

	if identityID == "" {
		return nil
	}

	grants, err := svc.GrantsForIdentity(identityID)
	if err != nil {
		return err
	}
	merged := permission.MergeByRight(grants)

	fmt.Printf("\nPermissions for %s:\n", identityID)
	for _, m := range merged {
		sources := make([]string, 0, len(m.Sources))
		for _, src := range m.Sources {
			sources = append(sources, describeSource(src))
		}
		fmt.Printf("  %s (via %s)\n", m.Right, strings.Join(sources, ", "))
	}
	return nil
}

func describeSource(src permission.GrantingSource) string {
	if src.Group != "" {
		return fmt.Sprintf("group %s", src.Group)
	}
	return fmt.Sprintf("account %s on %s", src.NativeIdentity, src.Application)
}
