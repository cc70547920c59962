package system

import (
	"fmt"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/keyring"
	"github.com/stride-cli/stride/internal/storage"
)

type KeyringCmd struct {
	Set   KeyringSetCmd   `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	Clear KeyringClearCmd `cmd:"" help:"Remove the stored connection string."`
}

type KeyringSetCmd struct {
	ConnString string `arg:"" help:"PostgreSQL connection string (credentials allowed here; they never touch disk)."`
}

func (c *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !storage.IsPostgresConnString(c.ConnString) {
		return fmt.Errorf("expected a postgres:// or postgresql:// connection string")
	}
	if err := keyring.SetConnectionString(c.ConnString); err != nil {
		return err
	}
	fmt.Println("Stored connection string in OS keyring.")
	return nil
}

type KeyringClearCmd struct{}

func (c *KeyringClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Removed connection string from OS keyring.")
	return nil
}
