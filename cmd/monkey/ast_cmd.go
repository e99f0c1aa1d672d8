package main

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/monkey-lang/monkey/ast"
	"github.com/monkey-lang/monkey/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Display the syntax tree for Monkey code",
	Args:  cobra.MaximumNArgs(1),
	RunE:  astHandler,
}

func init() {
	astCmd.Flags().StringP("output", "o", "", "Output format (json or text)")
	astCmd.Flags().Bool("stats", false, "Show node counts instead of the tree")
}

func astHandler(cmd *cobra.Command, args []string) error {
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

	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		return printASTStats(program)
	}
	if output, _ := cmd.Flags().GetString("output"); output == "json" {
		return printASTJSON(program)
	}
	printAST(program)
	return nil
}

// astNode represents a node in the JSON AST output.
type astNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Children []*astNode `json:"children,omitempty"`
}

func printASTJSON(program *ast.Program) error {
	root := nodeToJSON(program)
	var data []byte
	var err error
	if viper.GetBool("no-color") {
		data, err = json.MarshalIndent(root, "", "  ")
	} else {
		data, err = prettyjson.Marshal(root)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func nodeToJSON(node ast.Node) *astNode {
	if node == nil {
		return nil
	}
	result := &astNode{Type: nodeTypeName(node)}

	switch n := node.(type) {
	case *ast.Program:
		for _, stmt := range n.Stmts {
			result.Children = append(result.Children, nodeToJSON(stmt))
		}
	case *ast.Let:
		result.Value = n.Name.Name
		result.Children = append(result.Children, nodeToJSON(n.Value))
	case *ast.Return:
		result.Children = append(result.Children, nodeToJSON(n.Value))
	case *ast.ExprStmt:
		result.Children = append(result.Children, nodeToJSON(n.X))
	case *ast.Block:
		for _, stmt := range n.Stmts {
			result.Children = append(result.Children, nodeToJSON(stmt))
		}
	case *ast.Ident:
		result.Value = n.Name
	case *ast.Int:
		result.Value = n.Value
	case *ast.String:
		result.Value = n.Value
	case *ast.Bool:
		result.Value = n.Value
	case *ast.Null:
		result.Value = nil
	case *ast.Prefix:
		result.Value = n.Op
		result.Children = append(result.Children, nodeToJSON(n.X))
	case *ast.Infix:
		result.Value = n.Op
		result.Children = append(result.Children, nodeToJSON(n.X), nodeToJSON(n.Y))
	case *ast.If:
		result.Children = append(result.Children, &astNode{
			Type:     "Condition",
			Children: []*astNode{nodeToJSON(n.Cond)},
		})
		result.Children = append(result.Children, &astNode{
			Type:     "Then",
			Children: []*astNode{nodeToJSON(n.Consequence)},
		})
		if n.Alternative != nil {
			result.Children = append(result.Children, &astNode{
				Type:     "Else",
				Children: []*astNode{nodeToJSON(n.Alternative)},
			})
		}
	case *ast.Func:
		params := make([]string, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, p.Name)
		}
		result.Value = strings.Join(params, ", ")
		result.Children = append(result.Children, nodeToJSON(n.Body))
	case *ast.Call:
		result.Children = append(result.Children, nodeToJSON(n.Fun))
		for _, arg := range n.Args {
			result.Children = append(result.Children, nodeToJSON(arg))
		}
	case *ast.Array:
		for _, el := range n.Elems {
			result.Children = append(result.Children, nodeToJSON(el))
		}
	case *ast.Hash:
		for _, item := range n.Items {
			result.Children = append(result.Children, &astNode{
				Type:     "Pair",
				Children: []*astNode{nodeToJSON(item.Key), nodeToJSON(item.Value)},
			})
		}
	case *ast.Index:
		result.Children = append(result.Children, nodeToJSON(n.X), nodeToJSON(n.Index))
	}
	return result
}

func nodeTypeName(node ast.Node) string {
	return reflect.TypeOf(node).Elem().Name()
}

// Colors for the tree display
var (
	nodeColor    = color.New(color.FgHiCyan, color.Bold)
	literalColor = color.New(color.FgHiYellow)
	fieldColor   = color.New(color.FgHiMagenta)
	mutedColor   = color.New(color.FgHiBlack)
)

func printAST(program *ast.Program) {
	fmt.Println(nodeColor.Sprint("Program"))
	for i, stmt := range program.Stmts {
		printNode(stmt, "", i == len(program.Stmts)-1)
	}
}

func printNode(node ast.Node, indent string, isLast bool) {
	if node == nil {
		return
	}

	connector := "├─ "
	childIndent := indent + "│  "
	if isLast {
		connector = "└─ "
		childIndent = indent + "   "
	}

	label := nodeColor.Sprint(nodeTypeName(node))
	var detail string
	var children []ast.Node

	switch n := node.(type) {
	case *ast.Let:
		detail = fieldColor.Sprint(n.Name.Name)
		children = []ast.Node{n.Value}
	case *ast.Return:
		children = []ast.Node{n.Value}
	case *ast.ExprStmt:
		children = []ast.Node{n.X}
	case *ast.Block:
		detail = mutedColor.Sprintf("(%d stmts)", len(n.Stmts))
		for _, stmt := range n.Stmts {
			children = append(children, stmt)
		}
	case *ast.Ident:
		detail = literalColor.Sprintf("%q", n.Name)
	case *ast.Int:
		detail = literalColor.Sprintf("%d", n.Value)
	case *ast.String:
		detail = literalColor.Sprintf("%q", n.Value)
	case *ast.Bool:
		detail = literalColor.Sprintf("%v", n.Value)
	case *ast.Prefix:
		detail = fieldColor.Sprint(n.Op)
		children = []ast.Node{n.X}
	case *ast.Infix:
		detail = fieldColor.Sprint(n.Op)
		children = []ast.Node{n.X, n.Y}
	case *ast.If:
		children = []ast.Node{n.Cond, n.Consequence}
		if n.Alternative != nil {
			children = append(children, n.Alternative)
		}
	case *ast.Func:
		params := make([]string, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, p.Name)
		}
		detail = fieldColor.Sprintf("fn(%s)", strings.Join(params, ", "))
		children = []ast.Node{n.Body}
	case *ast.Call:
		children = append(children, n.Fun)
		for _, arg := range n.Args {
			children = append(children, arg)
		}
	case *ast.Array:
		detail = mutedColor.Sprintf("(%d elems)", len(n.Elems))
		for _, el := range n.Elems {
			children = append(children, el)
		}
	case *ast.Hash:
		detail = mutedColor.Sprintf("(%d pairs)", len(n.Items))
		for _, item := range n.Items {
			children = append(children, item.Key, item.Value)
		}
	case *ast.Index:
		children = []ast.Node{n.X, n.Index}
	}

	line := mutedColor.Sprint(indent+connector) + label
	if detail != "" {
		line += " " + detail
	}
	fmt.Println(line)

	for i, child := range children {
		printNode(child, childIndent, i == len(children)-1)
	}
}

func printASTStats(program *ast.Program) error {
	counts := map[string]int{}
	total := 0
	ast.Inspect(program, func(n ast.Node) bool {
		if n == nil {
			return true
		}
		counts[nodeTypeName(n)]++
		total++
		return true
	})

	if viper.GetBool("no-color") {
		data, err := json.MarshalIndent(counts, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		data, err := prettyjson.Marshal(counts)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}
	fmt.Fprintf(os.Stderr, "%s\n", mutedColor.Sprintf("%d nodes total", total))
	return nil
}
