/*
 * Copyright 2026 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package y

// Helpers for the two ways errors are treated in hashcalc:
// (1) a broken internal invariant is fatal, use AssertTruef.
// (2) an error crossing a package boundary carries context, use Wrapf. The
//     wrapped error keeps its cause, so errors.Is still matches sentinels.

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
)

// AssertTruef asserts that b is true. Otherwise, it logs fatal with the formatted message.
func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		log.Fatalf("%+v", errors.Errorf(format, args...))
	}
}

// Wrapf annotates err with a formatted message and a stack trace. A nil err stays nil.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// CombineErrors returns both errors joined by a semicolon, or whichever one is
// non-nil. errors.Is and errors.As see through the result to either cause.
func CombineErrors(one, other error) error {
	switch {
	case one != nil && other != nil:
		return &combinedError{errs: []error{one, other}}
	case one != nil:
		return one
	default:
		return other
	}
}

type combinedError struct {
	errs []error
}

func (e *combinedError) Error() string {
	return fmt.Sprintf("%v; %v", e.errs[0], e.errs[1])
}

func (e *combinedError) Unwrap() []error { return e.errs }
