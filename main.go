package main

import "github.com/gestionat/hr-management/cmd"

func main() {
	cmd.Execute()
}
