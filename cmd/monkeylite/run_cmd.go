/*
File    : monkeylite/cmd/monkeylite/run_cmd.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"monkeylite/environment"
	"monkeylite/eval"
	"monkeylite/internal/ui"
	"monkeylite/object"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a monkeylite source file or inline expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
}

func runScript(cmd *cobra.Command, args []string) error {
	var source string

	switch {
	case evalExpr != "":
		source = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e/--eval for inline code")
	}

	env := environment.New()
	result := eval.Run(source, env)

	if result == nil {
		return nil
	}
	if result.Type() == object.ERROR_OBJ {
		ui.Error(os.Stderr, result.Inspect())
		return fmt.Errorf("evaluation failed")
	}

	ui.Result(os.Stdout, result.Inspect())
	return nil
}
