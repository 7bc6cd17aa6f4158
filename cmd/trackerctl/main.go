package main

import "jobtracker/cmd/trackerctl/cmd"

func main() {
	cmd.Execute()
}
