package ui

// Package ui contains the Fyne-based desktop user interface. It lists the
// flight data sessions of the configured directory and wires the Refresh,
// Show in folder and Open folder actions to the platform layer.
