package main

// Valid payload formats for file input.
var validFormats = []string{"auto", "json", "csv"}

// Valid draft sources.
var validSources = []string{"schedule", "generator"}
