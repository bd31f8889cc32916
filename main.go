package main

import "task-track-service.com/task-track-service/cmd"

func main() {
	cmd.Execute()
}
