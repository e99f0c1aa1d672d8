package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/monkey-lang/monkey/parser"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "monkey [file]",
	Short: "Parser and syntax tools for the Monkey language",
	Long: `Monkey is a small dynamically-typed scripting language. This tool
parses Monkey source code and reports syntax errors with source context.
With no input it starts an interactive session.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runHandler,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("code", "c", "", "Code to parse")
	pf.Bool("stdin", false, "Read code from stdin")
	pf.Bool("no-color", false, "Disable colored output")
	pf.Bool("timing", false, "Show parse timing")
	pf.String("history-file", "", "Path to the interactive session history file")
	viper.SetEnvPrefix("MONKEY")
	viper.AutomaticEnv()
	viper.BindPFlag("code", pf.Lookup("code"))
	viper.BindPFlag("stdin", pf.Lookup("stdin"))
	viper.BindPFlag("no-color", pf.Lookup("no-color"))
	viper.BindPFlag("timing", pf.Lookup("timing"))
	viper.BindPFlag("history-file", pf.Lookup("history-file"))
	viper.BindEnv("no-color", "NO_COLOR")

	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(versionCmd)
}

func runHandler(cmd *cobra.Command, args []string) error {
	processGlobalFlags()
	if shouldRunRepl(cmd, args) {
		return runRepl(cmd.Context())
	}

	code, filename, err := getMonkeyCode(cmd, args)
	if err != nil {
		return err
	}

	var opts []parser.Option
	if filename != "" {
		opts = append(opts, parser.WithFilename(filename))
	}

	start := time.Now()
	program, err := parser.Parse(cmd.Context(), code, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	if viper.GetBool("timing") {
		log.Info().
			Int("statements", len(program.Stmts)).
			Dur("elapsed", elapsed).
			Msg("parse ok")
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if output, _ := cmd.Flags().GetString("output"); output == "json" {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		fmt.Printf("monkey %s (commit %s, built %s)\n", version, commit, date)
		return nil
	},
}

func init() {
	versionCmd.Flags().StringP("output", "o", "", "Output format (json or text)")
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
