// Package ui contains the Bubble Tea program that drives a menu built from a
// layout document. Model focuses on message orchestration while dedicated
// helpers own navigation, text entry and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While a text input is being edited, keys go to the editor first. While
//     the jump list is open, keys edit its query or pick a target.
//   - Everything else is routed through a typed handler registry so each
//     tea.Msg is handled by a focused function (for example, navigation for
//     key presses or reloads of the layout file).
//   - After every update the navigator flushes pending layout on the current
//     screen and moves focus off any control that can no longer hold it.
//
// State ownership:
//   - Screens, history and focus live in internal/screen. The model never
//     links controls itself; it only asks the navigator to move.
//   - Leaf elements push their anchor and visibility into the surface kept by
//     the model, and View draws from it.
//   - Activations go through the internal/ui/command bus, which traces them
//     and reports failures back as messages.
//   - The jump list lives in internal/ui/state.
//
// Reloads:
//   - A layoutdoc.Watcher streams freshly parsed documents. The model builds
//     them into a new menu, releases the old one and returns to the screen
//     with the same id when it still exists.
package ui
