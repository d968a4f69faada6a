// This file is part of GopherAce.
//
// GopherAce is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAce is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAce.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions for the package tests. The functions
// come in two flavours: the Expect*() functions report a failure with
// t.Errorf() and allow the test to continue; the Demand*() functions stop the
// test immediately with t.Fatalf().
//
// The optional tags arguments are prefixed to any failure message and can be
// used to identify the particular case in a table driven test.
package test
