// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a pattern and a list
// of values in the same way as fmt.Errorf(). The pattern is remembered and
// can be tested for with Is() and Has():
//
//	const LoadError = "romloader: %v"
//
//	err := curated.Errorf(LoadError, io.ErrUnexpectedEOF)
//
//	if curated.Is(err, LoadError) {
//		fmt.Println("true")
//	}
//
// Is() only looks at the outermost error. Has() searches the entire chain,
// including any curated errors passed as values to Errorf().
//
// When an error is printed, adjacent duplicate parts of the message are
// removed. This means that it doesn't matter too much if a function wraps an
// error with the same prefix as the error it received:
//
//	err := curated.Errorf("vm: %v", curated.Errorf("vm: stopped"))
//	fmt.Println(err) // vm: stopped
//
// IsAny() answers whether the error was created by Errorf() at all. We can
// think of the difference between curated and uncurated errors as being the
// difference between expected and unexpected errors.
package curated
