/*
File    : monkeylite/cmd/monkeylite/root.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"monkeylite/internal/config"
)

const (
	version = "0.1.0"
	author  = "akashmaji946@iisc.ac.in"
	line    = "----------------------------------------"
	banner  = `   __  __             _               _ _ _
  |  \/  | ___  _ __ | | _____ _   _| (_) |_ ___
  | |\/| |/ _ \| '_ \| |/ / _ \ | | | | | __/ _ \
  | |  | | (_) | | | |   <  __/ |_| | | | ||  __/
  |_|  |_|\___/|_| |_|_|\_\___|\__, |_|_|\__\___|
                                |___/              `
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:     "monkeylite",
	Short:   "A tree-walking interpreter for the monkeylite language",
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		replCmd.Run(cmd, args)
	},
}

// Execute runs the configured command tree; called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a settings file (default: ~/.monkeylite.yaml)")
}

func loadConfig() *config.Config {
	path := cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config %s: %v\n", path, err)
		return config.Default()
	}
	return cfg
}
