// This file is part of Frameinput.
//
// Frameinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frameinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frameinput.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package: it takes a pattern, placeholder
// values and returns an error. The pattern is remembered and can be tested
// for with the Is() and Has() functions.
//
//	const DeviceMissing = "sdlinput: no gamepad in slot %d"
//
//	err := curated.Errorf(DeviceMissing, 2)
//	if curated.Is(err, DeviceMissing) {
//		...
//	}
//
// Has() checks whether a pattern appears anywhere in the chain of wrapped
// curated errors. IsAny() reports whether the error is curated at all.
//
// The Error() implementation normalises the error chain, removing duplicate
// adjacent parts. A chain is a series of parts separated by ": ". This means
// code does not need to worry about whether the function it calls has already
// prefixed the error message with the same context.
//
// Curated errors work with the errors package in the standard library.
// Unwrap() returns the first error value that was passed to Errorf().
package curated
