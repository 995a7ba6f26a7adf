package main

// Default command-line flag values
const (
	defaultRepetitions = 1000 // Timed conversions per case
)

// Report formatting
const (
	nanosPerMicro = 1000.0
)
