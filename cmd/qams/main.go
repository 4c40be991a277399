// main is the entry point for the qams CLI.
package main

import (
	"os"

	"github.com/huangsam/qams/cmd"
	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/internal/histstore"
)

func main() {
	cmd.SetStoreManager(histstore.Manager)
	defer func() {
		if err := histstore.CloseStore(); err != nil {
			contract.LogWarn("could not close history store", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
