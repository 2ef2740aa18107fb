package model

// Package model defines the domain values shared by the UI and CLI: flight
// data sessions as listed from a directory.
