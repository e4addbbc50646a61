package main

import "github.com/hashicorp/cli"

// Commands returns the dock command table. Every command shares meta.
func Commands(meta *Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"measure": func() (cli.Command, error) {
			return &MeasureCommand{Meta: meta}, nil
		},
		"layout": func() (cli.Command, error) {
			return &LayoutCommand{Meta: meta}, nil
		},
		"render": func() (cli.Command, error) {
			return &RenderCommand{Meta: meta}, nil
		},
		"watch": func() (cli.Command, error) {
			return &WatchCommand{Meta: meta}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Meta: meta}, nil
		},
	}
}
