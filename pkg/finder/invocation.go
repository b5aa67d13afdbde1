package finder

import (
	"path/filepath"
	"strings"
)

// LiteraryFlag, as the first argument, switches on literary mode.
const LiteraryFlag = "--literary"

// literaryNameMarker switches on literary mode when it appears in the
// program's name, so a symlink such as findword-lit needs no flag.
const literaryNameMarker = "lit"

// Invocation is the query and mode derived from the command line.
type Invocation struct {
	Query    string
	Literary bool
}

// ParseInvocation derives the mode from the program name and first
// argument, and joins the remaining arguments into the query.
func ParseInvocation(programName string, args []string) Invocation {
	literary := strings.Contains(filepath.Base(programName), literaryNameMarker)
	if len(args) > 0 && args[0] == LiteraryFlag {
		literary = true
		args = args[1:]
	}
	return Invocation{
		Query:    strings.Join(args, " "),
		Literary: literary,
	}
}
