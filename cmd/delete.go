package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		resp, body, err := doRequest(http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil)
		if err != nil {
			return err
		}

		if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
			fmt.Printf("delete failed: %d\n%s\n", resp.StatusCode, body)
			return nil
		}

		fmt.Println("Task deleted.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
