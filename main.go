package main

import "github.com/proxati/oauth_capture/cmd"

func main() {
	cmd.Execute()
}
