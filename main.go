package main

import "github.com/courtside/jobchat/cmd"

func main() {
	cmd.Execute()
}
