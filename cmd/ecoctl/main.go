// Command ecoctl runs operator tasks against the EcoTrack database.
package main

import (
	"fmt"
	"os"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// openFunc returns a database handle and the function that releases it.
type openFunc func() (*gorm.DB, func(), error)

func main() {
	logging.Setup()

	open := func() (*gorm.DB, func(), error) {
		db, err := database.Connect(config.Load())
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = database.Close(db) }, nil
	}
	if err := newRootCmd(open).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(open openFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "ecoctl",
		Short:         "Operator tasks for the EcoTrack database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newMigrateCmd(open), newSeedBadgesCmd(open), newClearGoalsCmd(open), newGrantAdminCmd(open))
	return root
}

func newMigrateCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, release, err := open()
			if err != nil {
				return err
			}
			defer release()

			if err := database.Migrate(db); err != nil {
				return err
			}
			cmd.Printf("Migrations applied\n")
			return nil
		},
	}
}

func newSeedBadgesCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-badges",
		Short: "Insert any missing badge catalog entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, release, err := open()
			if err != nil {
				return err
			}
			defer release()

			if err := database.Migrate(db); err != nil {
				return err
			}
			badges, err := services.NewBadgeService(db).EnsureCatalog()
			if err != nil {
				return err
			}
			for _, b := range badges {
				cmd.Printf("%s  %-16s %s\n", b.Icon, b.Name, b.Criteria)
			}
			cmd.Printf("%d badges in catalog\n", len(badges))
			return nil
		},
	}
}

func newClearGoalsCmd(open openFunc) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "clear-goals",
		Short: "Delete every goal and reset user points",
		Example: `  # Remove all goals
  ecoctl clear-goals --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirm {
				return fmt.Errorf("refusing to delete goals without --yes")
			}

			db, release, err := open()
			if err != nil {
				return err
			}
			defer release()

			deleted, err := services.NewGoalService(db, nil, nil, 0, 0).ClearAll()
			if err != nil {
				return err
			}
			cmd.Printf("Deleted %d goals\n", deleted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "Confirm deletion")

	return cmd
}

func newGrantAdminCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "grant-admin <username>",
		Short: "Give an existing user the admin role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, release, err := open()
			if err != nil {
				return err
			}
			defer release()

			user, err := services.NewAuthService(db, &config.Config{}).GrantAdmin(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s (%s) is now an admin\n", user.Username, user.ID)
			return nil
		},
	}
}
