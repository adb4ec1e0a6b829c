package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	lewis "github.com/rmera/golewis"
)

type buildResult struct {
	mol *lewis.Molecule
	err error
}

func newBatchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Build the Lewis structures of many formulas concurrently",
		Long: `batch reads one formula per line from FILE, or from the standard input if
FILE is missing or "-". Blank lines and lines starting with # are skipped.
The molecules are built concurrently, and printed in input order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			formulas, err := readFormulas(in)
			if err != nil {
				return err
			}
			results, err := a.buildAll(cmd, formulas)
			if err != nil {
				return err
			}
			out, errOut := outputs(cmd)
			failed := 0
			for i, r := range results {
				if r.err != nil {
					a.report(out, errOut, formulas[i], r.err)
					failed++
					continue
				}
				if err := a.write(out, r.mol, false); err != nil {
					return err
				}
			}
			return failures(failed, len(formulas))
		},
	}
	cmd.Flags().Int("workers", 4, "number of molecules built at the same time")
	mustBind(a.v, "batch.workers", cmd.Flags().Lookup("workers"))
	return cmd
}

//buildAll builds every formula with at most batch.workers goroutines. All of
//them share the engine, and so the periodic table. Failed formulas are not
//an error for buildAll, they are recorded in their result.
func (a *app) buildAll(cmd *cobra.Command, formulas []string) ([]buildResult, error) {
	results := make([]buildResult, len(formulas))
	log := a.log.With(zap.String("batch", uuid.NewString()))
	log.Debug("batch started", zap.Int("formulas", len(formulas)), zap.Int("workers", a.cfg.Batch.Workers))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Batch.Workers)
	for i, f := range formulas {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mol, err := a.engine.Build(f)
			results[i] = buildResult{mol: mol, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug("batch done")
	return results, nil
}

func readFormulas(in io.Reader) ([]string, error) {
	var ret []string
	s := bufio.NewScanner(in)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ret = append(ret, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading formulas: %w", err)
	}
	return ret, nil
}
