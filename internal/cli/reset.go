package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/lifelens/lifelens/internal/backup"
	"github.com/lifelens/lifelens/internal/logger"
)

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		confirmed := false
		err := huh.NewConfirm().
			Title("Reset all data?").
			Description("Every entry, the mission, and your profile will be replaced with the demo dataset.").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	// Copy the store aside before destroying it.
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if backupPath, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Pre-reset backup failed", "error", err)
	} else {
		fmt.Printf("Backed up current data to %s\n", backupPath)
	}

	if err := ctx.Store.ResetData(); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}

	logger.Info("Store reset to seed data")
	fmt.Println("All data reset to the demo dataset.")
	return nil
}
