package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a task by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		resp, body, err := doRequest(http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil)
		if err != nil {
			return err
		}

		if resp.StatusCode != http.StatusOK {
			fmt.Printf("get failed: %d\n%s\n", resp.StatusCode, body)
			return nil
		}

		printJSON(body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
