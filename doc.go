// Package dock provides a dock layout engine and a retained view tree for Go.
//
// Users import this single package for the public API: view construction,
// measure specs, the layout driver and text preview rendering.
//
// A dock container anchors each child to one of its edges. Children are
// processed in insertion order and each one consumes a strip of the space
// left by the ones before it:
//
//	root := dock.New(dock.WithStretchLastChild(true))
//	root.AddChild(
//		dock.New(dock.WithDock(dock.DockTop), dock.WithText("header")),
//		dock.New(dock.WithDock(dock.DockLeft), dock.WithWidth(20)),
//		dock.New(dock.WithText("content")),
//	)
//	dock.Calculate(root, 80, 24)
//
// The engine itself lives in internal/layout and only sees the capability
// interfaces re-exported here, so other view systems can drive it through
// [Measure] and [Arrange].
package dock
