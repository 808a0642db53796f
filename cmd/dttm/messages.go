package main

// CLI branding for the root help display.
const (
	MainTitle   = "⏱ dttm"
	MainSummary = "★  Datetime strings ⇄ Unix epoch timestamps"
)

// Diagnostic messages (stderr only, never part of the stdout contract).
const (
	// MsgDetectedUnit reports the inferred unit of a bare integer timestamp.
	MsgDetectedUnit = "detected unit: %s"
)
