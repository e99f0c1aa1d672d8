package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/monkey-lang/monkey/internal/lexer"
	"github.com/monkey-lang/monkey/internal/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Display the token stream for Monkey code",
	Args:  cobra.MaximumNArgs(1),
	RunE:  lexHandler,
}

func init() {
	lexCmd.Flags().StringP("output", "o", "", "Output format (json or text)")
}

type tokenInfo struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func lexHandler(cmd *cobra.Command, args []string) error {
	processGlobalFlags()
	code, _, err := getMonkeyCode(cmd, args)
	if err != nil {
		return err
	}

	var tokens []tokenInfo
	l := lexer.New(code)
	for {
		tok, err := l.Next()
		if err != nil {
			return err
		}
		tokens = append(tokens, tokenInfo{
			Type:    string(tok.Type),
			Literal: tok.Literal,
			Line:    tok.StartPosition.LineNumber(),
			Column:  tok.StartPosition.ColumnNumber(),
		})
		if tok.Type == token.EOF {
			break
		}
	}

	if output, _ := cmd.Flags().GetString("output"); output == "json" {
		data, err := json.MarshalIndent(tokens, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	typeColor := color.New(color.FgHiCyan)
	posColor := color.New(color.FgHiBlack)
	for _, t := range tokens {
		fmt.Printf("%s %s %s\n",
			posColor.Sprintf("%4d:%-3d", t.Line, t.Column),
			typeColor.Sprintf("%-10s", t.Type),
			t.Literal)
	}
	return nil
}
