// Command mockdata loads the demo dataset the way a given environment would
// and prints it, validates dataset files, or lists the acquisition attempts.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
