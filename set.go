// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cfg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"zombiezen.com/go/log"
)

// LoadFiles reads each path in order into a new store. Later files override
// earlier ones on key collisions, so list base defaults first and overrides
// last.
//
// Paths that do not exist are skipped with a debug log entry rather than
// failing, to support optional override files like per-user config.
// Any other read error, or a parse error in any file, stops the load and
// returns the error with no store.
func LoadFiles(ctx context.Context, paths ...string) (*Store, error) {
	s := new(Store)
	for _, p := range paths {
		err := s.LoadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf(ctx, "load config files: skipping %s: file does not exist", p)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load config files: %s: %w", p, err)
		}
	}
	return s, nil
}
