// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sanity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the query API.
type APIError struct {
	StatusCode  int
	Type        string
	Description string
}

func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("sanity API error (status %d): %s", e.StatusCode, e.Description)
	}
	return fmt.Sprintf("sanity API error (status %d, %s): %s", e.StatusCode, e.Type, e.Description)
}

// Temporary reports whether the failure may go away on a later request.
func (e *APIError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// parseAPIError understands both error shapes the API returns:
// {"error":{"type":..,"description":..}} and {"error":"..","message":".."}.
func parseAPIError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var env struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		apiErr.Description = strings.TrimSpace(string(body))
		return apiErr
	}

	var detail struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	}
	var label string
	switch {
	case json.Unmarshal(env.Error, &detail) == nil:
		apiErr.Type = detail.Type
		apiErr.Description = detail.Description
	case json.Unmarshal(env.Error, &label) == nil:
		apiErr.Type = label
		apiErr.Description = env.Message
	}
	if apiErr.Description == "" {
		apiErr.Description = env.Message
	}
	return apiErr
}
