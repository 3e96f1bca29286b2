package main

import "budgetmate/cmd"

func main() {
	cmd.Execute()
}
