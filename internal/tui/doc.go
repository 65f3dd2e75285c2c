// Package tui is the terminal front end for the alignment wizard.
//
// Model is a bubbletea model that drives a wizard.Wizard one step at a time.
// Enter continues, Tab and the arrow keys move between fields, and Enter on
// the insight step saves. Ctrl+C or Esc abandons the run without saving.
package tui
