/*
 * doc.go, part of chemprint.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 */

//Package v3 implements a matrix type for sets of cartesian coordinates,
//backed by the gonum mat library. Each row of a Matrix is one point in
//3D space.
package v3
