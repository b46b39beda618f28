// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package paths locates the files used by the program that are not named on
// the command line, such as the preferences file.
//
// If a directory called .gopher6502 exists in the current working directory
// then it is used as the base path. Otherwise the base path is the gopher6502
// directory in the user's configuration directory. The directory is never
// created by this package.
package paths
