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

// Package dump writes a graphviz representation of a snapshot store. The
// output is in the DOT language and can be rendered with the dot tool:
//
//	frameinput dump | dot -Tpng > store.png
//
// Only the state of the store is written. The provider and actuator are not
// included because they can hold references to C memory, which cannot be
// walked.
package dump

import (
	"bytes"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/snapshots"
)

// Sentinal error patterns.
const (
	WriteError = "dump: %v"
)

// Graph writes the current and previous state of every device in the store.
func Graph(w io.Writer, store *snapshots.Store) error {
	state := store.State()
	return Write(w, &state)
}

// Write the state in DOT format. Nothing is written for a nil state.
func Write(w io.Writer, state *snapshots.State) error {
	if state == nil {
		return nil
	}

	// memviz writes in many small chunks and does not report errors
	var b bytes.Buffer
	memviz.Map(&b, state)

	_, err := w.Write(b.Bytes())
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}
