/*
 * load.go, part of golewis.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goLewis is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package ptable

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//go:embed elements.json
var defaultData []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

//Default returns the table built from the data shipped with the library.
//It is parsed only once, the first time it is requested.
func Default() *Table {
	defaultOnce.Do(func() {
		T, err := Load(bytes.NewReader(defaultData))
		if err != nil {
			panic("ptable: embedded periodic table is corrupted: " + err.Error()) //the data is compiled in, so this is a programming error.
		}
		defaultTable = T
	})
	return defaultTable
}

//document is the on-disk layout, compatible with the widely used
//PeriodicTableJSON file. Fields not listed in Element are ignored.
type document struct {
	Elements []Element `json:"elements"`
}

//Load reads a JSON periodic table from r.
func Load(r io.Reader) (*Table, error) {
	var doc document
	dec := json.NewDecoder(bufio.NewReader(r))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("ptable: decoding table: %w", err)
	}
	if len(doc.Elements) == 0 {
		return nil, fmt.Errorf("ptable: table has no elements")
	}
	return NewTable(doc.Elements)
}

//LoadFile reads a JSON periodic table from the file name. Files ending in .gz
//are gzip-decompressed, and files ending in .zst or .zstd are zstd-decompressed.
func LoadFile(name string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("ptable: %w", err)
	}
	defer f.Close()
	r, err := decompressor(name, f)
	if err != nil {
		return nil, fmt.Errorf("ptable: opening %s: %w", name, err)
	}
	defer r.Close()
	T, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, name)
	}
	return T, nil
}

func decompressor(name string, in io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return gzip.NewReader(in)
	case ".zst", ".zstd":
		d, err := zstd.NewReader(in)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	default:
		return io.NopCloser(in), nil
	}
}
