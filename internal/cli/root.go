/*
 * root.go, part of golewis.
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

//Package cli implements the lewis command line tool.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	lewis "github.com/rmera/golewis"
	"github.com/rmera/golewis/internal/config"
	"github.com/rmera/golewis/internal/logging"
	"github.com/rmera/golewis/ptable"
)

//Version is set at build time with -ldflags "-X github.com/rmera/golewis/internal/cli.Version=..."
var Version = "dev"

//app holds what the commands share once the configuration is loaded.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	log    *zap.Logger
	table  *ptable.Table
	engine *lewis.Engine
}

//NewRootCommand builds the complete command tree. Each call returns an
//independent tree, with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}
	root := &cobra.Command{
		Use:   "lewis",
		Short: "Approximate Lewis structures and VSEPR geometries from formulas",
		Long: `lewis builds an approximate Lewis structure for a molecular formula such as
H2SO4: it picks a central atom, assigns bonds greedily and predicts the
VSEPR geometry of the central atom.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "config file (YAML)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.String("table", "", "periodic table JSON file, optionally .gz or .zst compressed")
	pf.StringP("format", "o", "", "output format: text, json or xyz")
	pf.Int("max-atoms", lewis.DefaultMaxAtoms, "largest formula accepted, in atoms (0 means no limit)")
	pf.String("basis", "", "lone pair basis for the geometry: electrons or capacity")
	mustBind(a.v, "table.path", pf.Lookup("table"))
	mustBind(a.v, "output.format", pf.Lookup("format"))
	mustBind(a.v, "parse.max_atoms", pf.Lookup("max-atoms"))
	mustBind(a.v, "geometry.lone_pair_basis", pf.Lookup("basis"))

	root.AddCommand(
		newInferCommand(a),
		newBatchCommand(a),
		newElementCommand(a),
		newVersionCommand(),
	)
	return root
}

//Execute runs the command line and returns the exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lewis:", err)
		return 1
	}
	return 0
}

//setup loads the configuration and builds the logger, the table and the engine.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(a.v, path); err != nil {
		return err
	}
	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	table, err := cfg.PeriodicTable()
	if err != nil {
		return err
	}
	opts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}
	a.cfg, a.log, a.table = cfg, log, table
	a.engine = lewis.NewEngine(table, opts, log.Named("engine"))
	log.Debug("configuration loaded",
		zap.String("config", path),
		zap.String("table", cfg.Table.Path),
		zap.Int("elements", table.Len()),
		zap.String("format", cfg.Output.Format))
	return nil
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		//no configuration needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lewis %s\n", Version)
		},
	}
}

//stdout and stderr of a command.
func outputs(cmd *cobra.Command) (io.Writer, io.Writer) {
	return cmd.OutOrStdout(), cmd.ErrOrStderr()
}
