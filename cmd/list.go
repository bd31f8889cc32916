package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	model "task-track-service.com/task-track-service/internal/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, body, err := doRequest(http.MethodGet, "/tasks", nil)
		if err != nil {
			return err
		}

		if resp.StatusCode != http.StatusOK {
			fmt.Printf("list failed: %d\n%s\n", resp.StatusCode, body)
			return nil
		}

		var tasks []model.Task
		if err := json.Unmarshal(body, &tasks); err != nil {
			return fmt.Errorf("unexpected response: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		for _, t := range tasks {
			fmt.Printf("[%d] %s - %s (created: %s)\n", t.ID, t.Title, t.Status, t.CreatedAt)
			if t.Description != nil && *t.Description != "" {
				fmt.Printf("    %s\n", *t.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
