// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"errors"
	"fmt"

	"github.com/jeranaias/unitconv/internal/catalog"
)

// UserMessage is the only error text shown to users for a failed conversion.
const UserMessage = "Conversion not possible. Please check the units."

// SuccessPrefix marks a successful conversion wherever one is announced.
const SuccessPrefix = "🎉"

var (
	// ErrNotPossible is matched by every *ConversionError.
	ErrNotPossible = errors.New("conversion not possible")

	// ErrInvalidRequest is matched by every *RequestError.
	ErrInvalidRequest = errors.New("invalid conversion request")
)

// ConversionError reports a conversion the registry could not perform.
type ConversionError struct {
	Category catalog.Category
	From     string
	To       string
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s to %s (%s): %v", e.From, e.To, e.Category, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is matching.
func (e *ConversionError) Is(target error) bool {
	return target == ErrNotPossible
}

// RequestError reports a request rejected before conversion.
type RequestError struct {
	Field   string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Message)
}

// Is implements errors.Is matching.
func (e *RequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// UserFacing returns the text a front end should show for err.
func UserFacing(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Field + " " + reqErr.Message
	}
	return UserMessage
}
