package main

import "fmt"

// VersionCommand prints the tool version.
type VersionCommand struct {
	*Meta
}

func (c *VersionCommand) Help() string {
	return "Usage: dock version\n\n  Prints the version of dock."
}

func (c *VersionCommand) Synopsis() string {
	return "Print the dock version"
}

func (c *VersionCommand) Run(_ []string) int {
	c.Ui.Output(fmt.Sprintf("dock v%s", version))
	return 0
}
