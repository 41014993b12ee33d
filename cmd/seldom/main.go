// Command seldom queries HTML documents with CSS selectors: it parses
// markup from a file or STDIN, runs a selector group against the tree, and
// prints each match.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/chrisuehlinger/seldom/css"
	"github.com/chrisuehlinger/seldom/html"
)

func main() {
	app := &cli.Command{
		Name:            "seldom",
		Usage:           "query HTML documents with CSS selectors",
		HideHelpCommand: true,
		ArgsUsage:       "SELECTOR",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read markup from `FILE` (STDIN when absent)"},
			&cli.BoolFlag{Name: "first", Aliases: []string{"1"}, Usage: "print only the first match"},
			&cli.BoolFlag{Name: "text", Aliases: []string{"t"}, Usage: "print text content instead of markup"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log parse and match diagnostics to stderr"},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "seldom: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("expecting exactly one SELECTOR argument, got %d", cmd.NArg())
	}

	log := zap.NewNop()
	if cmd.Bool("verbose") {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("unable to prepare logs: %w", err)
		}
		defer func() { _ = log.Sync() }()
	}

	group, err := css.ParseSelectorGroup(cmd.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid selector: %w", err)
	}
	log.Debug("selector parsed", zap.Stringer("group", group))

	in := os.Stdin
	source := "STDIN"
	if fname := cmd.String("file"); fname != "" {
		f, err := os.Open(fname)
		if err != nil {
			return fmt.Errorf("unable to open input: %w", err)
		}
		defer f.Close()
		in = f
		source = fname
	}

	root, err := html.ParseReader(in)
	if err != nil {
		return fmt.Errorf("unable to parse %s: %w", source, err)
	}

	matches := css.SelectAll(root, group)
	log.Info("query finished", zap.String("source", source), zap.Int("matches", len(matches)))

	if cmd.Bool("first") && len(matches) > 1 {
		matches = matches[:1]
	}
	for _, m := range matches {
		if cmd.Bool("text") {
			fmt.Println(strings.TrimSpace(m.Text()))
		} else {
			fmt.Println(m.HTML())
		}
	}
	return nil
}
