// main is the entry point for the concord CLI.
package main

import (
	"github.com/huangsam/concord/cmd"
	"github.com/huangsam/concord/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Cannot run concord", err)
	}
}
