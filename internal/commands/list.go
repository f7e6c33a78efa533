package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List logged drives",
	Run: func(cmd *cobra.Command, args []string) {
		coordinator, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer coordinator.Close()

		doc := coordinator.Document()
		drives := doc.Drives

		if nightOnly, _ := cmd.Flags().GetBool("night"); nightOnly {
			filtered := drives[:0:0]
			for _, d := range drives {
				if d.IsNightDrive {
					filtered = append(filtered, d)
				}
			}
			drives = filtered
		}

		if len(drives) == 0 {
			fmt.Println("No drives logged yet. Use 'roadlog add' to log your first session.")
			return
		}

		// Storage order is insertion order; show newest first.
		sorted := append(drives[:0:0], drives...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

		fmt.Printf("%-16s %-12s %-13s %-6s %-6s %-14s %s\n",
			"ID", "DATE", "TIME", "MIN", "NIGHT", "SUPERVISOR", "DESTINATION")
		fmt.Println(strings.Repeat("-", 84))

		for _, d := range sorted {
			night := ""
			if d.IsNightDrive {
				night = "🌙"
			}
			id := d.ID
			if len(id) > 16 {
				id = id[:13] + "..."
			}
			supervisor := d.SupervisorName
			if len(supervisor) > 12 {
				supervisor = supervisor[:9] + "..."
			}
			fmt.Printf("%-16s %-12s %s-%s %-6d %-6s %-14s %s\n",
				id, d.Date, d.StartTime, d.EndTime, d.DurationMinutes, night, supervisor, d.Destination)
		}

		fmt.Printf("\n%d drives — %.1fh day / %.1fh night\n",
			len(sorted), doc.User.CompletedDayHours, doc.User.CompletedNightHours)
	},
}

func init() {
	listCmd.Flags().Bool("night", false, "Show only night drives")
}
