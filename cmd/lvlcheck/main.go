// Command lvlcheck reports problems in Sokoban level files: header and
// character errors, a missing player marker, mismatched box and storage
// counts, levels that are already won, and boxes stuck in corners.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samdwyer/sokoban/data"
	"github.com/samdwyer/sokoban/internal/levelcheck"
)

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatalf("lvlcheck: %v", err)
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "lvlcheck",
		Usage:     "check Sokoban level files",
		ArgsUsage: "<level_file>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "builtin",
				Usage: "also check the levels embedded in the game",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return check(out, cmd.Args().Slice(), cmd.Bool("builtin"))
		},
	}
}

// check prints a report for every file and embedded level. It fails when
// nothing was checked or any level could not be parsed.
func check(out io.Writer, files []string, builtin bool) error {
	var reports []levelcheck.Report
	for _, path := range files {
		reports = append(reports, levelcheck.AnalyzeFile(path))
	}
	if builtin {
		for _, name := range data.Names() {
			src, err := data.Source(name)
			if err != nil {
				reports = append(reports, levelcheck.Report{Name: name, Err: err})
				continue
			}
			reports = append(reports, levelcheck.Analyze(name, bytes.NewReader(src)))
		}
	}

	if len(reports) == 0 {
		return cli.Exit("Usage: lvlcheck [--builtin] <level_file>...", 1)
	}

	failed := 0
	for _, r := range reports {
		if err := r.Print(out); err != nil {
			return err
		}
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d levels failed to load", failed, len(reports)), 1)
	}
	return nil
}
