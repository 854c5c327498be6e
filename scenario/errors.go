// SPDX-License-Identifier: MIT

package scenario

import "errors"

var (
	// ErrUnknownOp indicates a step whose op is not in the operation table.
	ErrUnknownOp = errors.New("scenario: unknown operation")

	// ErrMissingOperand indicates that a step omitted an operand its op needs.
	ErrMissingOperand = errors.New("scenario: missing operand")

	// ErrUnsupportedFormat indicates a Format value Parse cannot decode.
	ErrUnsupportedFormat = errors.New("scenario: unsupported format")
)
