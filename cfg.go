// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cfg

import (
	"fmt"
	"strings"
)

// commentChars is the set of characters that introduce a comment, at the
// start of a line or anywhere after it.
const commentChars = "#;"

// An Entry is a single parsed property. The key is lowercased and has all
// space characters removed; the value is trimmed of surrounding whitespace
// but otherwise verbatim.
type Entry struct {
	Key   string
	Value string
}

// Parse parses config text into entries in source order. Repeated keys are
// preserved as separate entries; resolving them is the caller's concern.
//
// Parse performs no I/O and stops at the first malformed line, returning an
// error that wraps ErrInvalidConfig and names the line. No partial result
// accompanies an error.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(text string) ([]Entry, error) {
	// Dropping carriage returns up front keeps CRLF input from leaking \r
	// into the last value on a line.
	text = strings.ReplaceAll(text, "\r", "")
	var entries []Entry
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line[0] {
		case '#', ';':
			// Comment
			continue
		case '[':
			// Section header. Recognized only to be skipped; no scoping
			// applies to the keys that follow.
			continue
		}
		if i := strings.IndexAny(line, commentChars); i != -1 {
			line = line[:i]
		}
		if strings.Count(line, "=") != 1 {
			return nil, fmt.Errorf("parse config: line %d: %w", n+1, ErrInvalidConfig)
		}
		i := strings.IndexByte(line, '=')
		entries = append(entries, Entry{
			Key:   strings.ToLower(strings.ReplaceAll(line[:i], " ", "")),
			Value: strings.TrimSpace(line[i+1:]),
		})
	}
	return entries, nil
}
