// Copyright
// SPDX-License-Identifier: MIT
// wikiview: two-pane terminal wiki viewer with a modal find box
package main

import (
	"fmt"

	"wikiview/internal/tui"
)

func main() {
	err := tui.Run()
	// Terminal state is already restored here; the farewell and any loop
	// error go to the regular screen. The exit code stays 0 either way.
	fmt.Println("Bye from Hyprland Wiki!")
	if err != nil {
		fmt.Printf("%v\n", err)
	}
}
