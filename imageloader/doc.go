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

// Package imageloader is used to specify the program image that is to be
// loaded into memory.
//
// An image is a binary file that is copied byte for byte into memory,
// starting at the origin address. The image wraps around at the top of memory
// so an image that starts at 0xfffc and is eight bytes long will occupy
// 0xfffc to 0x0003.
//
// The simplest instance of the Loader type:
//
//	ld := imageloader.Loader{
//		Filename: "programs/test.bin",
//		Origin:   0x0200,
//	}
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
package imageloader
