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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different set
// of flags for each mode.
//
// Whereas flag.FlagSet is parsed with the argument list as the only argument,
// with modalflag the arguments are first given to NewArgs() and then Parse() is
// called with no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "step", "script")
//	origin := md.AddAddress("origin", 0xfffc, "load address of image")
//	_, _ = md.Parse()
//
// A mode is a special argument that puts the program into a different mode of
// operation, in the way that the go command has build, test and so on. The
// first sub-mode given to AddSubModes() is the default and all comparisons are
// case insensitive. After Parse() the selected mode is returned by Mode():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddInt("cycles", 2, "number of cycles to execute")
//		p, err := md.Parse()
//		switch p {
//		case ParseError:
//			fmt.Println(err)
//			return
//		case ParseHelp:
//			return
//		}
//		run(*origin, *cycles, md.RemainingArgs())
//	}
//
// Modes can be nested as deeply as required. Each call to NewMode() starts a
// new set of flags and sub-modes. The Path() function returns every mode
// encountered so far, separated by a forward slash.
package modalflag
