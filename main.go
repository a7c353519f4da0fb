package main

import "github.com/komari-monitor/komari-uptime/cmd"

func main() {
	cmd.Execute()
}
