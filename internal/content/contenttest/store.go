// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package contenttest provides an in-memory content store for tests.
package contenttest

import (
	"context"
	"encoding/json"
	"sync"

	"sitefront/internal/groq"
)

// Store answers catalog queries by name with canned JSON results. It is safe
// for concurrent use.
type Store struct {
	mu      sync.Mutex
	results map[string]string
	errs    map[string]error
	calls   map[string]int
	params  map[string]map[string]any
}

// NewStore returns a store with the given results keyed by query name.
func NewStore(results map[string]string) *Store {
	s := &Store{results: map[string]string{}, errs: map[string]error{}, calls: map[string]int{}, params: map[string]map[string]any{}}
	for k, v := range results {
		s.results[k] = v
	}
	return s
}

// Set replaces the result for a query name.
func (s *Store) Set(name, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[name] = raw
}

// Fail makes every query with name fail with err.
func (s *Store) Fail(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[name] = err
}

// Calls returns how many times a query name was fetched.
func (s *Store) Calls(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

// LastParams returns the params of the most recent fetch of a query name.
func (s *Store) LastParams(name string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params[name]
}

// Fetch implements content.Querier. Missing results behave like a null
// result and leave out untouched.
func (s *Store) Fetch(_ context.Context, q groq.Query, out any) error {
	s.mu.Lock()
	s.calls[q.Name]++
	s.params[q.Name] = q.Params
	err := s.errs[q.Name]
	raw, ok := s.results[q.Name]
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if !ok || raw == "null" {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}
