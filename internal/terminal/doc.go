// Package terminal runs the interactive board on a raw-mode terminal.
//
// A Session owns the tcell screen for its whole lifetime: it enters raw mode and the
// alternate screen on creation, draws title, board, status and message log lines, and
// turns keyboard and mouse input into a single GameAction per call to GetGameAction.
// Close restores the terminal and must run on every exit path.
package terminal
