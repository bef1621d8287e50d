// Package ui is the Bubble Tea front end of the savings calculator.
//
// The calculator package owns all state transitions; this package maps key
// presses and mouse clicks onto them and performs the effects they request:
//   - timer: a chain of tea.Tick commands tagged with a generation number,
//     so stopping the timer orphans any tick already in flight
//   - sound: played inside a command, failures only logged
//   - pulse: a one-shot tea.Tick that clears the balance highlight
//   - ripple: view-only click feedback repainted until it expires
//
// Every button has a key binding; the help overlay (?) lists them.
package ui
