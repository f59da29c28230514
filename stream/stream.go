//Package stream persists descriptor tables as zstd-compressed files,
//one JSON line per frame, so long trajectories can be processed without
//keeping every result in memory.
package stream

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/chemprint/descriptors"
)

//Write!
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	names     []string
	filename  string
	writeable bool
}

// NewWriter creates a compressed descriptor stream with one column per
// name. The optional compression level follows the zstd scale; the
// default favors size over speed.
func NewWriter(name string, names []string, compressionLevel ...int) (*Writer, error) {
	if len(names) == 0 {
		return nil, Error{"no column names given", name, []string{"NewWriter"}}
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	level := zstd.SpeedBestCompression
	if len(compressionLevel) > 0 {
		level = zstd.EncoderLevelFromZstd(compressionLevel[0])
	}
	h, err := zstd.NewWriter(f, zstd.WithEncoderLevel(level))
	if err != nil {
		f.Close()
		return nil, Error{"can't set up compression: " + err.Error(), name, []string{"NewWriter"}}
	}
	W := &Writer{f: f, h: h, names: append([]string(nil), names...), filename: name, writeable: true}
	head, err := json.Marshal(header{Names: W.names})
	if err != nil {
		W.Close()
		return nil, Error{err.Error(), name, []string{"NewWriter"}}
	}
	if _, err := W.h.Write(append(head, '\n')); err != nil {
		W.Close()
		return nil, Error{err.Error(), name, []string{"NewWriter"}}
	}
	return W, nil
}

// WNext appends one frame of descriptor values, which must match the
// stream's columns.
func (W *Writer) WNext(row []descriptors.Value) error {
	if !W.writeable {
		return Error{"stream not open for writing", W.filename, []string{"WNext"}}
	}
	if len(row) != len(W.names) {
		return Error{fmt.Sprintf("%d values given, but %d expected", len(row), len(W.names)), W.filename, []string{"WNext"}}
	}
	b, err := json.Marshal(row)
	if err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}}
	}
	if _, err := W.h.Write(append(b, '\n')); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}}
	}
	return nil
}

// WTable appends every row of a result table. The table's columns must
// match the stream's.
func (W *Writer) WTable(t *descriptors.Table) error {
	frames, _ := t.Dims()
	for j, n := range t.Names() {
		if j >= len(W.names) || n != W.names[j] {
			return Error{"table columns don't match the stream's", W.filename, []string{"WTable"}}
		}
	}
	for fr := 0; fr < frames; fr++ {
		row := make([]descriptors.Value, len(W.names))
		for j := range W.names {
			row[j] = t.At(fr, j)
		}
		if err := W.WNext(row); err != nil {
			return Error{err.Error(), W.filename, []string{"WTable"}}
		}
	}
	return nil
}

// Close flushes and closes the stream. The writer can not be used after
// this call.
func (W *Writer) Close() {
	if W == nil || !W.writeable {
		return
	}
	W.h.Close()
	W.f.Close()
	W.writeable = false
}

//Read!
type Reader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	names    []string
	filename string
}

type header struct {
	Names []string `json:"names"`
}

//zstd's Decoder closes without an error return, unlike io.ReadCloser.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

// NewReader opens a descriptor stream for reading and returns the handle
// and the column names.
func NewReader(name string) (*Reader, []string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	d, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, Error{"can't set up decompression: " + err.Error(), name, []string{"NewReader"}}
	}
	R := &Reader{f: f, z: zstdql{d.Close, d}, h: bufio.NewReader(d), filename: name}
	line, err := R.h.ReadBytes('\n')
	if err != nil {
		R.Close()
		return nil, nil, Error{"can't read header: " + err.Error(), name, []string{"NewReader"}}
	}
	var head header
	if err := json.Unmarshal(line, &head); err != nil {
		R.Close()
		return nil, nil, Error{"can't read header: " + err.Error(), name, []string{"NewReader"}}
	}
	R.names = head.Names
	return R, append([]string(nil), R.names...), nil
}

// Next returns the next frame of descriptor values, or io.EOF when the
// stream is exhausted.
func (R *Reader) Next() ([]descriptors.Value, error) {
	line, err := R.h.ReadBytes('\n')
	if len(line) == 0 && err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, Error{err.Error(), R.filename, []string{"Next"}}
	}
	row := make([]descriptors.Value, 0, len(R.names))
	if err := json.Unmarshal(line, &row); err != nil {
		return nil, Error{err.Error(), R.filename, []string{"Next"}}
	}
	if len(row) != len(R.names) {
		return nil, Error{fmt.Sprintf("%d values read, but %d expected", len(row), len(R.names)), R.filename, []string{"Next"}}
	}
	return row, nil
}

// Table reads every remaining frame into a result table.
func (R *Reader) Table() (*descriptors.Table, error) {
	var rows [][]descriptors.Value
	for {
		row, err := R.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return descriptors.NewTable(R.names, rows)
}

// Close closes the stream. The reader can not be used after this call.
func (R *Reader) Close() {
	if R == nil {
		return
	}
	R.z.Close()
	R.f.Close()
}

//Error is the error type for the stream package, implementing the
//library's decorated errors.
type Error struct {
	message  string
	filename string
	deco     []string
}

func (e Error) Error() string {
	return fmt.Sprintf("stream file %s: %s", e.filename, e.message)
}

func (e Error) Decorate(deco string) []string {
	if deco != "" {
		e.deco = append(e.deco, deco)
	}
	return e.deco
}
