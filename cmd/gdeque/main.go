package main

import "github.com/Laisky/go-deque/cmd"

func main() {
	cmd.Execute()
}
