/*
 * xyz.go, part of golewis.
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

package coords

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"

	lewis "github.com/rmera/golewis"
)

//WriteXYZ writes mol with the coordinates in m, in XYZ format, to out.
//The comment line has the formula and the predicted geometry.
func WriteXYZ(out io.Writer, mol *lewis.Molecule, m *mat.Dense) error {
	r, c := m.Dims()
	if r != mol.Len() || c != 3 {
		return fmt.Errorf("WriteXYZ: coordinates are %dx%d, molecule has %d atoms", r, c, mol.Len())
	}
	if _, err := fmt.Fprintf(out, "%-4d\n%s %s\n", mol.Len(), mol.Formula, mol.Geometry.Label); err != nil {
		return err
	}
	for i := 0; i < mol.Len(); i++ {
		_, err := fmt.Fprintf(out, "%-2s  %8.3f%8.3f%8.3f\n", mol.Atom(i).Symbol, m.At(i, 0), m.At(i, 1), m.At(i, 2))
		if err != nil {
			return err
		}
	}
	return nil
}

//WriteXYZFile writes mol and m to the file name, in XYZ format. Files ending in
//.gz are gzip-compressed, and files ending in .zst or .zstd, zstd-compressed.
func WriteXYZFile(name string, mol *lewis.Molecule, m *mat.Dense) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w, err := compressor(name, f)
	if err != nil {
		return err
	}
	if err = WriteXYZ(w, mol, m); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//compressor wraps f in a compressing writer chosen from the extension of name.
//Closing the returned writer flushes it, but does not close f.
func compressor(name string, f io.Writer) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return gzip.NewWriter(f), nil
	case ".zst", ".zstd":
		return zstd.NewWriter(f)
	}
	return nopWriteCloser{f}, nil
}
