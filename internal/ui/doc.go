// Package ui contains the Bubble Tea program for the multi-pane portfolio
// terminal. Model focuses on message orchestration; the session package owns
// the pane tree and focus, and helpers here own input, rendering and effects.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry to a focused function.
//   - Keys go to the context menu when it is open, then to a running snake
//     game in the focused pane, then to the global shortcuts and finally to
//     the focused pane's line editor (internal/ui/input.go).
//   - Submitting a line runs it through the command registry. The result is
//     applied to the pane (exec.go): blocks are appended, effects started or
//     stopped, and deferred output handed to the internal/ui/command bus.
//
// Timers and staleness:
//   - Typewriter, matrix and snake ticks carry the generation they were
//     scheduled for. A tick or deferred output whose generation no longer
//     matches is dropped, so clearing a pane or restarting an effect never
//     leaves a second loop running.
//
// Rendering:
//   - View arranges the layout tree over the terminal, renders each pane's
//     scrollback wrapped to its width with the prompt on the last row, joins
//     siblings with one-cell separators and adds a footer.
package ui
