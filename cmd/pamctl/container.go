package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/pam-in-go/pkg/config"
	"github.com/doodlesbykumbi/pam-in-go/pkg/db"
	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/container"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/provisioning"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/schema"
	gormstore "github.com/doodlesbykumbi/pam-in-go/pkg/pam/store/gorm"
	"github.com/doodlesbykumbi/pam-in-go/pkg/workflow"
)

// containerCmd represents the container command
var containerCmd = &cobra.Command{
	Use:   "container",
	Short: "Manage PAM containers",
	Long:  `Inspect and manage PAM containers and their access.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'container' requires a subcommand (list, show, create, grant, revoke, attach, detach)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(containerCmd)
	containerCmd.PersistentFlags().String("requester", defaultRequester(), "Identity name submitting requests")
}

func defaultRequester() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "pamctl"
}

// pamServices bundles the wired-up services the container commands use.
type pamServices struct {
	db        *gorm.DB
	objects   *gormstore.ObjectStore
	container *container.Service
	keys      *schema.KeyResolver
}

func connectServices() (*pamServices, error) {
	conn, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	objects := gormstore.NewObjectStore(conn)
	access := gormstore.NewAccessStore(conn)
	keys := schema.NewKeyResolver(gormstore.NewSchemaStore(conn))
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	return &pamServices{
		db:        conn,
		objects:   objects,
		container: container.NewService(objects, access, keys, log),
		keys:      keys,
	}, nil
}

func (s *pamServices) orchestrator(requester string) *provisioning.Orchestrator {
	conn := s.db
	return provisioning.NewOrchestrator(provisioning.Deps{
		Objects: s.objects,
		Access:  gormstore.NewAccessStore(conn),
		Cases:   gormstore.NewCaseStore(conn),
		Keys:    s.keys,
		Runner:  workflow.NewQueueRunner(conn),
		Config:  config.Get(),
		Log:     zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}, requester)
}

func (s *pamServices) bindTarget(containerID string) (*model.Target, error) {
	target, err := s.objects.FetchTarget(containerID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("container %s not found", containerID)
	}
	if err := s.container.SetTarget(target); err != nil {
		return nil, err
	}
	return target, nil
}
