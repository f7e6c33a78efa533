package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and start over",
	Long: `Delete the logbook, backup copy and profile. This cannot be undone.

Requires --yes or an interactive confirmation.`,
	Run: func(cmd *cobra.Command, args []string) {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			fmt.Print("This deletes every logged drive and your profile. Type 'reset' to confirm: ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "reset" {
				fmt.Println("Cancelled.")
				return
			}
		}

		coordinator, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer coordinator.Close()

		if err := coordinator.Reset(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🗑️  All data deleted. Run 'roadlog setup' to start again.")
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
