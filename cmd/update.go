package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	updateTitle       string
	updateDescription string
	updateStatus      string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		payload := map[string]interface{}{}
		if cmd.Flags().Changed("title") {
			payload["title"] = updateTitle
		}
		if cmd.Flags().Changed("description") {
			payload["description"] = updateDescription
		}
		if cmd.Flags().Changed("status") {
			payload["status"] = updateStatus
		}

		if len(payload) == 0 {
			fmt.Println("Nothing to update. Use --title, --description or --status")
			return nil
		}

		resp, body, err := doRequest(http.MethodPut, fmt.Sprintf("/tasks/%d", id), payload)
		if err != nil {
			return err
		}

		if resp.StatusCode != http.StatusOK {
			fmt.Printf("update failed: %d\n%s\n", resp.StatusCode, body)
			return nil
		}

		fmt.Println("Task updated:")
		printJSON(body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new task title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new task description")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "new task status (pending or done)")
}
