package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func shouldRunRepl(cmd *cobra.Command, args []string) bool {
	if viper.GetBool("stdin") {
		return false
	}
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		return false
	}
	if len(args) > 0 {
		return false
	}
	return isTerminalIO()
}

// getMonkeyCode determines what code is to be parsed. There are three
// possibilities:
//  1. --code <code>
//  2. --stdin (read code from stdin)
//  3. path as args[0]
//
// The returned filename is empty unless the code came from a file.
func getMonkeyCode(cmd *cobra.Command, args []string) (string, string, error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	var stdinFlagSet bool
	if f := cmd.Flags().Lookup("stdin"); f != nil && f.Changed {
		stdinFlagSet = true
	}
	pathSupplied := len(args) > 0

	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return "", "", errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return "", "", errors.New("multiple input sources specified")
	}

	if stdinFlagSet {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	} else if pathSupplied {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}

	if !codeFlagSet {
		// No explicit source: fall back to piped stdin if there is one.
		if !isTerminalIO() {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return "", "", err
			}
			return string(data), "", nil
		}
		return "", "", errors.New("no input provided")
	}
	return viper.GetString("code"), "", nil
}
