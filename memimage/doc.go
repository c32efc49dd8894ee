// This file is part of Relok64.
//
// Relok64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Relok64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Relok64.  If not, see <https://www.gnu.org/licenses/>.

// Package memimage defines the memory image type shared by the emulation and
// relocation paths. An image is a snapshot of program memory plus the
// metadata a collaborator has declared about it: where the program loads,
// which ranges are code, data or pointer tables, and the entry vectors.
//
// The image itself holds no opinion about the declared metadata. It is the
// responsibility of the collaborator supplying the image to get the region
// boundaries right. The relocation package will however complain loudly if
// the metadata leads to an undecodable instruction.
package memimage
