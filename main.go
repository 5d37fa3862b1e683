package main

import "personal-site/cmd"

func main() {
	cmd.Execute()
}
