package system

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting an existing SQLite database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if storage.IsPostgresConnString(dbPath) {
			return fmt.Errorf("--force only applies to SQLite storage")
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// Provision the default local user if this is a fresh database.
	if _, err := ctx.Store.GetUserByName(constants.DefaultUserName); err != nil {
		user := models.User{
			ID:        uuid.New().String(),
			Name:      constants.DefaultUserName,
			CreatedAt: time.Now(),
		}
		if err := ctx.Store.AddUser(user); err != nil {
			return fmt.Errorf("failed to provision default user: %w", err)
		}
	}

	fmt.Printf("Initialized stride storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
