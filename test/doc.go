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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and should be used when
// the rest of the test depends on the result. For example, demanding that the
// lengths of two slices are equal before iterating over them in unison.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type:
//
//	bool  -> success is true
//	error -> success is nil
//
// An untyped nil is considered a success because of how error values
// usually work.
//
// The Writer type implements io.Writer and is useful for capturing output
// for comparison.
package test
