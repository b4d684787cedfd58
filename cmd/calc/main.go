package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/midbel/cli"
	"github.com/peterh/liner"

	"github.com/tdvu/calc/internal/calc"
)

const (
	appName     = "calc"
	historyFile = ".calc_history"
	prompt      = ">>> "
)

var (
	summary = "calc evaluates arithmetic expressions"
	help    = `Run calc without arguments to start the interactive evaluator.

Subcommands:
  repl         Start the interactive evaluator.
  eval EXPR..  Evaluate each expression and print its value.
  ast EXPR..   Print the parse tree of each expression.
`
	banner = "calc interactive evaluator\nCtrl+D or q/exit quits."
)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	var (
		set  = cli.NewFlagSet(appName)
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	args := set.Args()
	if len(args) == 0 {
		os.Exit(runRepl())
	}
	err := root.Execute(args)
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"repl"}, &replCmd)
	root.Register([]string{"eval"}, &evalCmd)
	root.Register([]string{"ast"}, &astCmd)
	return root
}

var replCmd = cli.Command{
	Name:    "repl",
	Summary: "start the interactive evaluator",
	Handler: &ReplCmd{},
}

var evalCmd = cli.Command{
	Name:    "eval",
	Summary: "evaluate the given expressions",
	Handler: &EvalCmd{},
}

var astCmd = cli.Command{
	Name:    "ast",
	Summary: "print the parse tree of the given expressions",
	Handler: &AstCmd{},
}

type ReplCmd struct{}

func (c *ReplCmd) Run(args []string) error {
	set := flag.NewFlagSet("repl", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		return err
	}
	os.Exit(runRepl())
	return nil
}

type EvalCmd struct{}

func (c *EvalCmd) Run(args []string) error {
	set := flag.NewFlagSet("eval", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() == 0 {
		return fmt.Errorf("usage: %s eval EXPR...", appName)
	}
	for _, expr := range set.Args() {
		value, err := calc.Evaluate(expr)
		if err != nil {
			return err
		}
		fmt.Println(formatResult(value))
	}
	return nil
}

type AstCmd struct{}

func (c *AstCmd) Run(args []string) error {
	set := flag.NewFlagSet("ast", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() == 0 {
		return fmt.Errorf("usage: %s ast EXPR...", appName)
	}
	printer := &calc.AstPrinter{}
	for _, expr := range set.Args() {
		tokens, err := calc.NewScanner([]rune(expr)).Scan()
		if err != nil {
			return err
		}
		root, err := calc.NewParser(tokens).Parse()
		if err != nil {
			return err
		}
		fmt.Println(printer.Print(root))
	}
	return nil
}

func runRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			// Ctrl+C aborts the current line, not the session.
			continue
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, "q") || strings.HasPrefix(input, "exit") {
			break
		}

		value, err := calc.Evaluate(line)
		if err != nil {
			fmt.Println(red("Error happened: " + err.Error()))
		} else {
			fmt.Println("<<< " + formatResult(value))
		}
		ln.AppendHistory(input)
	}

	return 0
}

func formatResult(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
