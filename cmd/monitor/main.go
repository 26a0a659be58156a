package main

import "github.com/glucotrack/monitoring/cmd/monitor/command"

func main() {
	command.Execute()
}
