// Package ui implements the interactive calendar interface: the view
// model, the renderer for the five event views, and the Bubble Tea
// update loop that ties input, background refreshes, animations, and
// notification scans together.
//
// The loop owns all mutable view state. Background fetches never touch
// the model directly; they post AppEvent values on a small channel and
// the Update function reconciles them one at a time. Hit-test
// rectangles are recorded by the renderer each frame so mouse dispatch
// never re-derives layout.
package ui
