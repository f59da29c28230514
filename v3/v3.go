/*
 * v3.go, part of chemprint.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of row vectors in 3D space, backed by a gonum Dense
//matrix. Within the package a "vector" is a row, i.e. the cartesian
//coordinates of one point.
type Matrix struct {
	*mat.Dense
}

//Dense2Matrix returns a Matrix backed by the given Dense. No copying.
func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

//Matrix2Dense returns the gonum Dense backing A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"v3.NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in the
//view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Vec returns the ith vector as a 3-element slice (copied).
func (F *Matrix) Vec(i int) []float64 {
	return []float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SomeVecs copies the vectors of A given by clist, in order, into the
//receiver, which must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) error {
	ar := A.NVecs()
	if F.NVecs() != len(clist) {
		return Error{fmt.Sprintf("receiver has %d vectors, %d requested", F.NVecs(), len(clist)), []string{"v3.SomeVecs"}}
	}
	for i, j := range clist {
		if j >= ar || j < 0 {
			return Error{fmt.Sprintf("vector requested (%d) out of range", j), []string{"v3.SomeVecs"}}
		}
		F.Set(i, 0, A.At(j, 0))
		F.Set(i, 1, A.At(j, 1))
		F.Set(i, 2, A.At(j, 2))
	}
	return nil
}

//Copy returns a new Matrix with a copy of the data in F.
func (F *Matrix) Copy() *Matrix {
	c := Zeros(F.NVecs())
	c.Dense.Copy(F.Dense)
	return c
}

//Sub subtracts B from A and puts the result in the receiver.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Add adds A and B and puts the result in the receiver.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Scale scales A by v and puts the result in the receiver.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//SubVec subtracts the single vector vec from every vector of A and puts
//the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	for i := 0; i < A.NVecs(); i++ {
		F.Set(i, 0, A.At(i, 0)-vec.At(0, 0))
		F.Set(i, 1, A.At(i, 1)-vec.At(0, 1))
		F.Set(i, 2, A.At(i, 2)-vec.At(0, 2))
	}
}

//AddVec adds the single vector vec to every vector of A and puts
//the result in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	for i := 0; i < A.NVecs(); i++ {
		F.Set(i, 0, A.At(i, 0)+vec.At(0, 0))
		F.Set(i, 1, A.At(i, 1)+vec.At(0, 1))
		F.Set(i, 2, A.At(i, 2)+vec.At(0, 2))
	}
}

//Norm returns the Euclidean norm of F taken as a single vector.
func (F *Matrix) Norm() float64 {
	var n float64
	r, c := F.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			n += F.At(i, j) * F.At(i, j)
		}
	}
	return math.Sqrt(n)
}

//Dist returns the Euclidean distance between the ith and jth vectors of F.
func (F *Matrix) Dist(i, j int) float64 {
	dx := F.At(i, 0) - F.At(j, 0)
	dy := F.At(i, 1) - F.At(j, 1)
	dz := F.At(i, 2) - F.At(j, 2)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

//Error is the error type for the v3 package. The deco slice records the
//functions in the calling stack, as in the rest of the library's
//decorated errors.
type Error struct {
	message string
	deco    []string
}

func (e Error) Error() string {
	return e.message
}

//Decorate adds info to the error and returns the current decoration.
func (e Error) Decorate(deco string) []string {
	if deco != "" {
		e.deco = append(e.deco, deco)
	}
	return e.deco
}
