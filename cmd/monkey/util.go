package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/monkey-lang/monkey/errors"
	"github.com/spf13/viper"
)

var red = color.New(color.FgRed).SprintFunc()

// fatal prints an error to stderr and exits. Parse errors are shown with
// their formatted source context.
func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case errors.FormattableError:
		formatter := errors.NewFormatter(useColor(os.Stderr))
		s = formatter.Format(msg.ToFormatted())
	case errors.FriendlyError:
		s = msg.FriendlyErrorMessage()
	case error:
		s = red(msg.Error())
	case string:
		s = red(msg)
	default:
		s = red(fmt.Sprintf("%v", msg))
	}
	fmt.Fprintf(os.Stderr, "%s\n", s)
	os.Exit(1)
}

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

// useColor reports whether output to the given file should be colorized.
func useColor(f *os.File) bool {
	if viper.GetBool("no-color") {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
}
