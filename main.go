package main

import "github.com/Jvjx01/2D-Aero-Tester/cmd"

func main() {
	cmd.Execute()
}
