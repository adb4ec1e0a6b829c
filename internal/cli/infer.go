package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	lewis "github.com/rmera/golewis"
	"github.com/rmera/golewis/chemgraph"
	"github.com/rmera/golewis/chemjson"
	"github.com/rmera/golewis/coords"
	"github.com/rmera/golewis/internal/config"
)

func newInferCommand(a *app) *cobra.Command {
	var withCoords bool
	var xyzOut string
	cmd := &cobra.Command{
		Use:   "infer FORMULA...",
		Short: "Build the Lewis structure of one or more formulas",
		Example: `  lewis infer H2O
  lewis infer -o json --coords CO2 CH4
  lewis infer --xyz-out sulfuric.xyz.gz H2SO4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := outputs(cmd)
			failed := 0
			for _, formula := range args {
				mol, err := a.engine.Build(formula)
				if err != nil {
					a.report(out, errOut, formula, err)
					failed++
					continue
				}
				if err := a.write(out, mol, withCoords); err != nil {
					return err
				}
				if xyzOut != "" {
					if err := writeXYZFile(xyzOut, mol, len(args), formula); err != nil {
						return err
					}
				}
			}
			return failures(failed, len(args))
		},
	}
	cmd.Flags().BoolVar(&withCoords, "coords", false, "include idealized coordinates in JSON output")
	cmd.Flags().StringVar(&xyzOut, "xyz-out", "", "also write idealized coordinates to this XYZ file (.gz and .zst compress)")
	return cmd
}

//writeXYZFile writes the coordinates of mol to name. With several formulas,
//the formula is inserted before the extensions, so "out.xyz.gz" becomes
//"out.H2O.xyz.gz".
func writeXYZFile(name string, mol *lewis.Molecule, n int, formula string) error {
	if n > 1 {
		if i := strings.Index(name, ".xyz"); i >= 0 {
			name = name[:i] + "." + formula + name[i:]
		} else {
			name = name + "." + formula
		}
	}
	m, err := coords.Ideal(mol)
	if err != nil {
		return err
	}
	return coords.WriteXYZFile(name, mol, m)
}

//write prints mol to out, in the configured format.
func (a *app) write(out io.Writer, mol *lewis.Molecule, withCoords bool) error {
	switch a.cfg.Output.Format {
	case config.FormatJSON:
		var m *mat.Dense
		if withCoords {
			var err error
			if m, err = coords.Ideal(mol); err != nil {
				return err
			}
		}
		doc, jerr := chemjson.FromMolecule(mol, m)
		if jerr != nil {
			return jerr
		}
		if jerr := doc.Send(out); jerr != nil {
			return jerr
		}
		return nil
	case config.FormatXYZ:
		m, err := coords.Ideal(mol)
		if err != nil {
			return err
		}
		return coords.WriteXYZ(out, mol, m)
	}
	return writeText(out, mol)
}

func writeText(out io.Writer, mol *lewis.Molecule) error {
	var b strings.Builder
	b.WriteString(mol.Structure())
	if frags := chemgraph.New(mol).Fragments(); len(frags) > 1 {
		fmt.Fprintf(&b, "\nDisconnected fragments: %d\n", len(frags))
		for _, f := range frags {
			syms := make([]string, len(f))
			for i, id := range f {
				syms[i] = mol.Atom(id).String()
			}
			fmt.Fprintf(&b, "  %s\n", strings.Join(syms, " "))
		}
	}
	if un := mol.Unsaturated(); len(un) > 0 {
		syms := make([]string, len(un))
		for i, at := range un {
			syms[i] = at.String()
		}
		fmt.Fprintf(&b, "\nAtoms with spare valence: %s\n", strings.Join(syms, " "))
	}
	b.WriteString("\n")
	_, err := io.WriteString(out, b.String())
	return err
}

//report tells the user that formula failed. JSON output gets an error
//document, everything else a line on errOut.
func (a *app) report(out, errOut io.Writer, formula string, err error) {
	a.log.Debug("formula rejected", zap.String("formula", formula), zap.Error(err))
	if a.cfg.Output.Format == config.FormatJSON {
		jerr := chemjson.NewError(err)
		jerr.Formula = formula
		if serr := jerr.Send(out); serr == nil {
			return
		}
	}
	fmt.Fprintf(errOut, "%s: %v\n", formula, err)
}

//failures returns an error if any of the n formulas failed.
func failures(failed, n int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d formulas failed", failed, n)
}
