package descriptors

import (
	"fmt"

	chem "github.com/rmera/chemprint"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Calculator applies a batch of descriptors to every frame of an atom
// group. Descriptors are named (resolved against the catalog at
// construction) or given directly as functions with AddFunc.
type Calculator struct {
	sel   chem.AtomGroup
	names []string
	fns   []Func
}

// New validates the selection and resolves every name against the
// catalog. It fails with an InputTypeError if sel is not a genuine atom
// group, and with a LookupError naming the first unresolvable descriptor,
// both before any computation.
func New(sel chem.AtomGroup, names ...string) (*Calculator, error) {
	if err := chem.CheckGroup(sel); err != nil {
		return nil, err
	}
	c := &Calculator{sel: sel}
	for _, n := range names {
		f, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		c.names = append(c.names, n)
		c.fns = append(c.fns, f)
	}
	return c, nil
}

// AddFunc registers a descriptor function directly, bypassing the
// catalog. The label names its column in the result table.
func (C *Calculator) AddFunc(label string, f Func) {
	C.names = append(C.names, label)
	C.fns = append(C.fns, f)
}

// Run converts each frame of the selection into a bonded molecule and
// applies every descriptor to it, producing one table row per frame.
func (C *Calculator) Run() (*Table, error) {
	if len(C.fns) == 0 {
		return nil, fmt.Errorf("no descriptors requested")
	}
	frames := C.sel.NFrames()
	rows := make([][]Value, 0, frames)
	for fr := 0; fr < frames; fr++ {
		m, err := chem.MolFromGroup(C.sel, fr)
		if err != nil {
			return nil, err
		}
		row := make([]Value, len(C.fns))
		for i, f := range C.fns {
			v, err := f(m)
			if err != nil {
				return nil, fmt.Errorf("descriptor '%s' failed on frame %d: %w", C.names[i], fr, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return &Table{names: append([]string(nil), C.names...), rows: rows}, nil
}

// Table holds descriptor results: one row per frame, one column per
// descriptor.
type Table struct {
	names []string
	rows  [][]Value
}

// NewTable builds a table directly from column names and rows, e.g. when
// reading results back from a file. Every row must have one value per
// name.
func NewTable(names []string, rows [][]Value) (*Table, error) {
	for i, r := range rows {
		if len(r) != len(names) {
			return nil, fmt.Errorf("row %d has %d values for %d columns", i, len(r), len(names))
		}
	}
	return &Table{names: append([]string(nil), names...), rows: rows}, nil
}

// Dims returns the number of frames and of descriptors.
func (T *Table) Dims() (frames, descs int) {
	return len(T.rows), len(T.names)
}

// At returns the value for the given frame and descriptor column.
func (T *Table) At(frame, desc int) Value {
	return T.rows[frame][desc]
}

// Names returns the descriptor column labels.
func (T *Table) Names() []string {
	return append([]string(nil), T.names...)
}

// Column returns all frames of the named descriptor column.
func (T *Table) Column(name string) ([]Value, error) {
	for j, n := range T.names {
		if n != name {
			continue
		}
		col := make([]Value, len(T.rows))
		for i, row := range T.rows {
			col[i] = row[j]
		}
		return col, nil
	}
	return nil, chem.NewLookupError(name, "the table columns")
}

// Dense returns the table as a gonum matrix. It fails if any column is
// textual, naming it.
func (T *Table) Dense() (*mat.Dense, error) {
	frames, descs := T.Dims()
	d := mat.NewDense(frames, descs, nil)
	for i, row := range T.rows {
		for j, v := range row {
			f, ok := v.Float64()
			if !ok {
				return nil, fmt.Errorf("column '%s' is textual, not numeric", T.names[j])
			}
			d.Set(i, j, f)
		}
	}
	return d, nil
}

// ColumnStats returns the mean and standard deviation of the jth column
// across frames. It fails on textual columns.
func (T *Table) ColumnStats(j int) (mean, stdev float64, err error) {
	vals := make([]float64, 0, len(T.rows))
	for _, row := range T.rows {
		f, ok := row[j].Float64()
		if !ok {
			return 0, 0, fmt.Errorf("column '%s' is textual, not numeric", T.names[j])
		}
		vals = append(vals, f)
	}
	mean, stdev = stat.MeanStdDev(vals, nil)
	return mean, stdev, nil
}

// MarshalJSON encodes the table with its column names and rows.
func (T *Table) MarshalJSON() ([]byte, error) {
	return marshalTable(T)
}
