package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/monkey-lang/monkey/errors"
	"github.com/monkey-lang/monkey/parser"
	"github.com/spf13/viper"
)

const historyFileName = ".monkey_history"

// runRepl reads Monkey code interactively, parses each entry, and prints
// the canonical form of the resulting program. Entries that end in an
// unexpected end of file continue onto the next line.
func runRepl(ctx context.Context) error {
	promptColor := color.New(color.FgHiGreen)
	resultColor := color.New(color.FgHiWhite)
	formatter := errors.NewFormatter(useColor(os.Stderr))

	fmt.Printf("Monkey %s - interactive parser\n", version)
	fmt.Println("Enter code to see its canonical form. Ctrl-D to exit.")

	historyPath := historyFilePath()

	scanner := bufio.NewScanner(os.Stdin)
	var buf strings.Builder

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if buf.Len() == 0 {
			promptColor.Print(">> ")
		} else {
			promptColor.Print(".. ")
		}
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := scanner.Text()
		if buf.Len() == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(line)
		entry := buf.String()

		program, err := parser.Parse(ctx, entry)
		if err != nil {
			if needsMoreInput(err) {
				continue
			}
			buf.Reset()
			appendHistory(historyPath, entry)
			if fErr, ok := err.(errors.FormattableError); ok {
				fmt.Fprintln(os.Stderr, formatter.Format(fErr.ToFormatted()))
			} else {
				fmt.Fprintln(os.Stderr, red(err.Error()))
			}
			continue
		}

		buf.Reset()
		appendHistory(historyPath, entry)
		resultColor.Println(program.String())
	}
}

// needsMoreInput reports whether a parse error indicates the entry is
// incomplete rather than malformed. Unterminated strings never continue
// because string literals cannot span lines.
func needsMoreInput(err error) bool {
	msg := err.Error()
	if strings.Contains(msg, "string literal") {
		return false
	}
	return strings.Contains(msg, "end of file")
}

func historyFilePath() string {
	if path := viper.GetString("history-file"); path != "" {
		return path
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFileName)
}

func appendHistory(path, entry string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	// History entries are single lines; fold multi-line input.
	fmt.Fprintln(f, strings.ReplaceAll(entry, "\n", " "))
}
