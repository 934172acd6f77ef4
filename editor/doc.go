// Package editor provides the tilde editing session and its Bubble Tea
// front end.
//
// A Session owns the document buffer, the visible frame and the on-screen
// cursor, and keeps them consistent across edits and navigation. Search runs
// incremental find on top of a Session. Model adapts a Session to Bubble Tea:
// key handling, the save-as and find prompts, rendering and the status line.
package editor
