/*
File    : monkeylite/cmd/monkeylite/repl_cmd.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"

	"github.com/spf13/cobra"

	"monkeylite/internal/replsvc"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive monkeylite session",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		r := replsvc.New(banner, version, author, line, cfg.Prompt)
		r.Start(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
