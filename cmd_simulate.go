// Copyright
// SPDX-License-Identifier: MIT
package main

import (
    "errors"
    "fmt"
    "os"

    "github.com/spf13/cobra"
    "go.uber.org/zap"

    "headroom/internal/replay"
    "headroom/internal/tui/util"
    "headroom/internal/tui/widgets/diff"
)

var errTraceMismatch = errors.New("trace output differs from expectation")

func (a *app) simulateCmd() *cobra.Command {
    var (
        expect     string
        update     bool
        sideBySide bool
        width      int
    )
    cmd := &cobra.Command{
        Use:   "simulate TRACE",
        Short: "Replay a YAML scroll trace and print every header transition",
        Example: `  headroom simulate testdata/scenario.yaml
  headroom simulate testdata/scenario.yaml --expect testdata/scenario.golden`,
        Args: cobra.ExactArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            tr, err := replay.Load(args[0])
            if err != nil {
                return err
            }
            steps := replay.Run(tr, a.cfg.Options(), a.log.Named("replay"))
            out := replay.Format(steps)
            a.log.Info("trace replayed", zap.String("trace", args[0]), zap.Int("steps", len(steps)))

            if expect == "" {
                fmt.Fprint(cmd.OutOrStdout(), out)
                return nil
            }
            if update {
                if err := os.WriteFile(expect, []byte(out), 0o644); err != nil {
                    return fmt.Errorf("write %s: %w", expect, err)
                }
                fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", expect)
                return nil
            }
            want, err := os.ReadFile(expect)
            if err != nil {
                return fmt.Errorf("read expectation: %w", err)
            }
            if string(want) == out {
                fmt.Fprintf(cmd.OutOrStdout(), "ok %s (%d steps)\n", args[0], len(steps))
                return nil
            }
            noColor := util.NoColor(a.cfg.UI.NoColor)
            if sideBySide {
                fmt.Fprintln(cmd.ErrOrStderr(), diff.SideBySide(string(want), out, width, noColor))
            } else {
                fmt.Fprintln(cmd.ErrOrStderr(), diff.Unified(string(want), out, noColor))
            }
            return fmt.Errorf("%s: %w", expect, errTraceMismatch)
        },
    }
    f := cmd.Flags()
    f.StringVar(&expect, "expect", "", "compare the output with this file")
    f.BoolVar(&update, "update", false, "rewrite the --expect file instead of comparing")
    f.BoolVar(&sideBySide, "side-by-side", false, "show a mismatch side by side")
    f.IntVar(&width, "width", 120, "width of the side-by-side diff")
    return cmd
}
