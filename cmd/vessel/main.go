// cmd/vessel/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "vessel",
		Short: "Monitor Docker container resource usage via cgroupv2",
		Long: `Vessel lukee containereiden resurssilaskurit suoraan cgroupv2
hierarkiasta ja kirjoittaa ne JSON tiedostoon tai näyttää livenä.`,
	}

	root.AddCommand(newMonitorCmd())
	root.AddCommand(newWatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
