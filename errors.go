// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cfg

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates that a non-blank, non-comment, non-section line
// did not contain exactly one '=' separator. Errors returned by Parse and the
// Store load methods wrap it; test with errors.Is.
var ErrInvalidConfig = errors.New("invalid config")

// ErrNoSuchKey indicates that a lookup found no entry for the key. Errors
// returned by the Store getters wrap it; test with errors.Is.
//
// A key stored with an empty value is present, not missing: looking it up
// succeeds and returns "".
var ErrNoSuchKey = errors.New("no such key")

// A ValueError reports an entry whose value could not be converted to the
// requested type.
type ValueError struct {
	Key   string // normalized key
	Value string // stored value, verbatim
	Err   error  // underlying conversion error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("config value for %q: %v", e.Key, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }
