package main

import "github.com/ZacxDev/go-docsite/cmd"

func main() {
	cmd.Execute()
}
