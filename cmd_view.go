// Copyright
// SPDX-License-Identifier: MIT
package main

import (
    "github.com/spf13/cobra"

    "headroom/internal/tui"
)

func (a *app) viewCmd() *cobra.Command {
    var (
        pin           bool
        noAnimate     bool
        follow        bool
        noColor       bool
        title         string
        upTolerance   int
        downTolerance int
        pinStart      int
    )
    cmd := &cobra.Command{
        Use:   "view FILE",
        Short: "Page FILE with an auto-hiding header",
        Example: `  headroom view README.md
  headroom view --follow --up-tolerance 2 /var/log/app.log`,
        Args: cobra.ExactArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            f := cmd.Flags()
            c := a.cfg
            if f.Changed("pin") {
                c.Header.Pin = pin
            }
            if f.Changed("up-tolerance") {
                c.Header.UpTolerance = upTolerance
            }
            if f.Changed("down-tolerance") {
                c.Header.DownTolerance = downTolerance
            }
            if f.Changed("pin-start") {
                c.Header.PinStart = pinStart
            }
            if f.Changed("title") {
                c.Header.Title = title
            }
            if noAnimate {
                c.UI.Animate = false
            }
            if follow {
                c.UI.Follow = true
            }
            if noColor {
                c.UI.NoColor = true
            }
            if err := c.Validate(); err != nil {
                return err
            }
            return tui.Run(args[0], tui.OptionsFromConfig(c), a.log)
        },
    }
    f := cmd.Flags()
    f.BoolVar(&pin, "pin", false, "keep the header pinned")
    f.IntVar(&upTolerance, "up-tolerance", 0, "lines to scroll up before the header returns")
    f.IntVar(&downTolerance, "down-tolerance", 0, "lines to scroll down before the header hides")
    f.IntVar(&pinStart, "pin-start", 0, "offset at or below which the header stays in the page")
    f.StringVar(&title, "title", "", "header title (default: file name)")
    f.BoolVar(&noAnimate, "no-animate", false, "snap instead of sliding")
    f.BoolVar(&follow, "follow", false, "reload on change and stay at the end")
    f.BoolVar(&noColor, "no-color", false, "disable colors")
    return cmd
}
