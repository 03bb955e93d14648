// Command tint checks and adjusts CSS hex colors from the command line.
package main

import "github.com/gogpu/tint/cmd/tint/cmd"

func main() {
	cmd.Execute()
}
