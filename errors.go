/*
 * errors.go, part of chemprint.
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

package chemprint

import "fmt"

// Error is the interface for errors that all packages in this library
// implement. The Decorate method adds information to the error as it is
// passed up, without changing its type or wrapping it. Each call returns
// the current decoration slice; an empty string just returns the current
// value.
type Error interface {
	error
	Decorate(string) []string
}

// CError is the concrete error type used for internal failures. The deco
// slice should contain a list of the functions in the calling stack, plus
// any relevant extra information per function.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string {
	return err.msg
}

func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate decorates err with the caller name if err implements the
// Error interface, and wraps it into a CError otherwise.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return CError{msg: err.Error(), deco: []string{caller}}
	}
	err2.Decorate(caller)
	return err2
}

// InputTypeError reports that a selection passed to an analysis function
// is not a genuine atom group. Whole-system containers (a *Molecule) must
// be narrowed with Select before analysis.
type InputTypeError struct {
	Got string // description of what was passed instead
}

func (e *InputTypeError) Error() string {
	return fmt.Sprintf("selection must be an AtomGroup, not %s", e.Got)
}

func (e *InputTypeError) Decorate(deco string) []string {
	return []string{deco}
}

// LookupError reports a name or selector that does not resolve against any
// known capability. Name holds the offending value; the full message names
// it, as callers and tests rely on the wording.
type LookupError struct {
	Name string
	msg  string
}

func (e *LookupError) Error() string {
	return e.msg
}

func (e *LookupError) Decorate(deco string) []string {
	return []string{deco}
}

// NewLookupError returns a LookupError for name unresolvable in the given
// catalog, e.g. "the available fingerprints".
func NewLookupError(name, catalog string) *LookupError {
	return &LookupError{Name: name, msg: fmt.Sprintf("Could not find '%s' in %s", name, catalog)}
}

// NewOutputTypeError returns a LookupError for an unrecognized output-type
// selector.
func NewOutputTypeError(dtype string) *LookupError {
	return &LookupError{Name: dtype, msg: fmt.Sprintf("'%s' is not a supported output type", dtype)}
}

// UnsupportedError reports a request for a variant a capability does not
// have, e.g. a hashed version of a fixed-width fingerprint.
type UnsupportedError struct {
	Name string // the capability
	Mode string // the requested variant, e.g. "hashed"
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not available in a %s version", e.Name, e.Mode)
}

func (e *UnsupportedError) Decorate(deco string) []string {
	return []string{deco}
}
