package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	createTitle       string
	createDescription string
	createStatus      string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new task",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]interface{}{"title": createTitle}
		if cmd.Flags().Changed("description") {
			payload["description"] = createDescription
		}
		if cmd.Flags().Changed("status") {
			payload["status"] = createStatus
		}

		resp, body, err := doRequest(http.MethodPost, "/tasks", payload)
		if err != nil {
			return err
		}

		if resp.StatusCode != http.StatusCreated {
			fmt.Printf("create failed: %d\n%s\n", resp.StatusCode, body)
			return nil
		}

		fmt.Println("Task created:")
		printJSON(body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "task title (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "task description")
	createCmd.Flags().StringVar(&createStatus, "status", "", "task status (pending or done)")
	_ = createCmd.MarkFlagRequired("title")
}
