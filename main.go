// Copyright
// SPDX-License-Identifier: MIT
// headroom: terminal pager with an auto-hiding header + scroll trace simulator
package main

import (
    "errors"
    "fmt"
    "os"

    "github.com/spf13/cobra"
    "go.uber.org/zap"

    "headroom/internal/config"
    "headroom/internal/logging"
)

const Version = "0.1.0"

// app carries state shared by subcommands once the root pre-run has loaded
// configuration and logging.
type app struct {
    cfgPath  string
    cfg      *config.Config
    log      *zap.Logger
    closeLog func() error
}

func main() {
    if err := newRootCmd().Execute(); err != nil {
        os.Exit(1)
    }
}

func newRootCmd() *cobra.Command {
    a := &app{log: zap.NewNop(), closeLog: func() error { return nil }}
    root := &cobra.Command{
        Use:   "headroom",
        Short: "Page files under a header that hides on scroll down and returns on scroll up",
        Long: `headroom pages a file in the terminal with a header that gets out of the way:
it scrolls away with the text, slides back in when you scroll up past a
tolerance, and settles into the page again at the top.

The same decision engine can be driven headlessly from a YAML scroll trace
with "headroom simulate".`,
        Version:           Version,
        SilenceUsage:      true,
        PersistentPreRunE: a.setup,
        PersistentPostRunE: func(*cobra.Command, []string) error {
            return a.closeLog()
        },
    }
    root.PersistentFlags().StringVar(&a.cfgPath, "config", config.DefaultPath(), "config file (YAML, or TOML by extension)")
    root.AddCommand(a.viewCmd(), a.simulateCmd(), a.initCmd())
    return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
    if cmd.Name() == "init" {
        return nil
    }
    c, err := config.Load(a.cfgPath)
    if err != nil {
        return err
    }
    a.cfg = c
    l, closeFn, err := logging.New(c.Log)
    if err != nil {
        return err
    }
    a.log, a.closeLog = l, closeFn
    a.log.Debug("config loaded", zap.String("path", a.cfgPath))
    return nil
}

func (a *app) initCmd() *cobra.Command {
    var force bool
    cmd := &cobra.Command{
        Use:   "init",
        Short: "Write a default config file",
        Args:  cobra.NoArgs,
        RunE: func(cmd *cobra.Command, _ []string) error {
            if _, err := os.Stat(a.cfgPath); err == nil && !force {
                return fmt.Errorf("%s already exists (use --force to overwrite)", a.cfgPath)
            } else if err != nil && !errors.Is(err, os.ErrNotExist) {
                return err
            }
            c := config.Default()
            if err := config.Save(a.cfgPath, &c); err != nil {
                return err
            }
            fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.cfgPath)
            return nil
        },
    }
    cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
    return cmd
}
