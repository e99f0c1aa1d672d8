package main

import (
	"fmt"
	"os"

	"github.com/monkey-lang/monkey/parser"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reformat Monkey code into canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  fmtHandler,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "Write result back to the source file")
}

func fmtHandler(cmd *cobra.Command, args []string) error {
	processGlobalFlags()
	code, filename, err := getMonkeyCode(cmd, args)
	if err != nil {
		return err
	}

	var opts []parser.Option
	if filename != "" {
		opts = append(opts, parser.WithFilename(filename))
	}
	program, err := parser.Parse(cmd.Context(), code, opts...)
	if err != nil {
		return err
	}

	formatted := program.String() + "\n"

	write, _ := cmd.Flags().GetBool("write")
	if write {
		if filename == "" {
			return fmt.Errorf("-w requires a file argument")
		}
		info, err := os.Stat(filename)
		if err != nil {
			return err
		}
		return os.WriteFile(filename, []byte(formatted), info.Mode().Perm())
	}

	fmt.Print(formatted)
	return nil
}
