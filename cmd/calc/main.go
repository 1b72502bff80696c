package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/graeme-hill/mathstuff-go/lib"
)

func main() {
	app := &cli.App{
		Name:      "calc",
		Usage:     "evaluate an arithmetic expression",
		ArgsUsage: "[expression]",
		Action:    run,
	}

	if err := app.Run(argsWithFlagsDisabled(os.Args)); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	expr := resolveExpression(c)
	if expr == "" {
		return errors.New("empty expression")
	}

	result, err := lib.Eval(expr)
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}

// argsWithFlagsDisabled inserts a "--" terminator so that expressions
// beginning with a minus sign, like "-5 + 2", reach the action as positional
// args instead of being rejected as unknown flags. Help stays reachable.
func argsWithFlagsDisabled(args []string) []string {
	if len(args) > 1 && (args[1] == "-h" || args[1] == "--help") {
		return args
	}
	return append([]string{args[0], "--"}, args[1:]...)
}

// resolveExpression joins any positional args into one expression; with no
// args it reads a single line from stdin and trims surrounding whitespace.
func resolveExpression(c *cli.Context) string {
	if c.Args().Present() {
		return strings.Join(c.Args().Slice(), " ")
	}

	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
