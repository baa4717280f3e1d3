package main

import (
	"fmt"
	"os"

	"github.com/ribgsilva/note-app/app/cmd/schema"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notectl",
	Short: "Operational commands for the notes services",
}

func main() {
	rootCmd.AddCommand(schema.Command())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
