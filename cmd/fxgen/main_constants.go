package main

// Positional argument indexes.
const (
	argFunction = iota
	argOutput
	argEntries
	argFracBits
	maxArgs
)

// Output settings.
const (
	stdoutPath = "-"
	allTables  = "all"
	outputMode = 0o644
)

// aliases maps functions evaluated from another function's table.
var aliases = map[string]string{
	"asin":       "acos",
	"cos":        "sin",
	"atan2":      "atan",
	"atan2_fast": "atan_fast",
}
