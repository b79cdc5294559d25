// SPDX-License-Identifier: MIT

package propagator

import "errors"

// ErrUnknownMethod is returned by New and ParseMethod for an unsupported method.
var ErrUnknownMethod = errors.New("propagator: unknown method")
