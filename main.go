package main

import "reading-app-backend/cmd"

func main() {
	cmd.Execute()
}
