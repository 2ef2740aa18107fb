package platform

// Package platform contains OS/platform integration: listing flight data
// session files by creation time and revealing paths in the native file
// manager (Finder, Explorer, or a FileManager1 service over D-Bus).
