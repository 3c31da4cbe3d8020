package main

import (
	"github.com/yeisme/codestat/cmd"
)

func main() {
	cmd.Execute()
}
