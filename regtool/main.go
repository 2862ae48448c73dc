package main

import "github.com/Carbrevo/aarch64-cpu/regtool/cmd"

func main() {
	cmd.Execute()
}
