// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cfg

import (
	"encoding"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// A Store is an ordered, append-only collection of entries accumulated
// across one or more loads. The zero value is an empty store.
//
// A Store can be read by multiple concurrent goroutines once loading is
// complete. The load methods are not synchronized: callers that load and
// read concurrently must serialize access themselves.
type Store struct {
	entries []Entry
}

// LoadText parses text and appends its entries to s, after any entries from
// earlier loads. Because lookups prefer the most recent entry, loading
// defaults first and overrides after gives the overrides precedence.
//
// LoadText is atomic: if text fails to parse, the error is returned and s is
// unchanged.
func (s *Store) LoadText(text string) error {
	entries, err := Parse(text)
	if err != nil {
		return err
	}
	s.entries = append(s.entries, entries...)
	return nil
}

// LoadFile reads the file at path and loads its contents like LoadText.
// Read failures wrap the underlying *fs.PathError, so
// errors.Is(err, fs.ErrNotExist) reports a missing file.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config file: %w", err)
	}
	return s.LoadText(string(data))
}

// Len returns the number of entries in s, counting repeated keys once per
// occurrence.
func (s *Store) Len() int {
	return len(s.entries)
}

// GetString returns the value of the most recently loaded entry for key.
// The key is matched case-insensitively. If no entry matches, GetString
// returns an error wrapping ErrNoSuchKey.
func (s *Store) GetString(key string) (string, error) {
	key = strings.ToLower(key)
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Key == key {
			return s.entries[i].Value, nil
		}
	}
	return "", fmt.Errorf("config key %q: %w", key, ErrNoSuchKey)
}

// GetBool retrieves key as GetString does and interprets the value as a
// boolean. Only the strings "true" and "false" are accepted, ignoring case;
// any other value is a *ValueError. In particular "1", "0", "t", "yes", and
// friends do not parse.
func (s *Store) GetBool(key string) (bool, error) {
	v, err := s.GetString(key)
	if err != nil {
		return false, err
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true, nil
	case strings.EqualFold(v, "false"):
		return false, nil
	default:
		return false, &ValueError{
			Key:   strings.ToLower(key),
			Value: v,
			Err:   errors.New("not \"true\" or \"false\""),
		}
	}
}

// GetInt retrieves key as GetString does and parses the value as a base-10
// 64-bit signed integer. An unparseable value is a *ValueError.
func (s *Store) GetInt(key string) (int64, error) {
	v, err := s.GetString(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &ValueError{Key: strings.ToLower(key), Value: v, Err: err}
	}
	return n, nil
}

// GetFloat retrieves key as GetString does and parses the value as a 64-bit
// float. An unparseable value is a *ValueError.
func (s *Store) GetFloat(key string) (float64, error) {
	v, err := s.GetString(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &ValueError{Key: strings.ToLower(key), Value: v, Err: err}
	}
	return f, nil
}

// GetValue retrieves key as GetString does and unmarshals the value into v.
// This covers any type with a canonical text form, like net.IP or
// time.Time. An unmarshaling failure is a *ValueError.
func (s *Store) GetValue(key string, v encoding.TextUnmarshaler) error {
	raw, err := s.GetString(key)
	if err != nil {
		return err
	}
	if err := v.UnmarshalText([]byte(raw)); err != nil {
		return &ValueError{Key: strings.ToLower(key), Value: raw, Err: err}
	}
	return nil
}
