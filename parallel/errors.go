// SPDX-License-Identifier: MIT

package parallel

import "errors"

var (
	// ErrNilView is returned when Run or ForEach receives a nil view.
	ErrNilView = errors.New("parallel: nil view")

	// ErrNilFunc is returned when Run or ForEach receives a nil callback.
	ErrNilFunc = errors.New("parallel: nil func")
)
