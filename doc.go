// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package cfg parses a simplified, section-less INI dialect into a queryable
key/value store.

This package is designed for loading small flat settings files: a Store
accumulates key/value entries across one or more loads and answers lookups
with last-write-wins resolution, so a program can load its defaults first
and user overrides after.

Syntax

A config file is Unicode text encoded in UTF-8. Carriage returns are
ignored, so Windows-style line endings are accepted. Each line holds at
most one property: a key and a value separated by a single equals sign
('='):

	key = value

Keys are case-insensitive and have all space characters removed, so
"Log Level" and "loglevel" name the same property. Values are trimmed of
leading and trailing whitespace and otherwise left verbatim: there is no
quoting or escape syntax, and a value written as "TEST" keeps its quote
characters.

If the first non-whitespace character of a line is a semicolon (';') or a
hash ('#'), the whole line is a comment. Either character also begins a
comment anywhere else on a line:

	key = value ; trailing comment

Because there is no quote awareness, a comment character inside a value
ends the value there, even between double quotes. This is a known sharp
edge of the format, kept for compatibility.

A line whose first non-whitespace character is a square bracket ('[') is a
section header. Section headers are recognized only to be skipped: they
apply no scoping or prefix to the keys that follow them. Blank lines are
ignored. Any other line that does not contain exactly one '=' after
comment stripping is an error, and the error rejects the entire text it
appeared in.

Repeated keys

A key may appear any number of times, across any number of loads into the
same Store. Lookups return the value of the most recently loaded
occurrence.
*/
package cfg
