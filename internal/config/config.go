//Package config loads the settings of the lewis command: defaults, an optional
//YAML file and LEWIS_* environment variables, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	lewis "github.com/rmera/golewis"
	"github.com/rmera/golewis/internal/logging"
	"github.com/rmera/golewis/ptable"
)

//envPrefix is the prefix of the environment variables, so "parse.max_atoms"
//is read from LEWIS_PARSE_MAX_ATOMS.
const envPrefix = "LEWIS"

//Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXYZ  = "xyz"
)

type TableConfig struct {
	//Path to a JSON periodic table, optionally .gz or .zst compressed.
	//Empty means the embedded table.
	Path string `mapstructure:"path"`
}

type ParseConfig struct {
	MaxAtoms int `mapstructure:"max_atoms"`
}

type GeometryConfig struct {
	LonePairBasis string `mapstructure:"lone_pair_basis"`
}

type BondingConfig struct {
	DoubleBondPairs []string `mapstructure:"double_bond_pairs"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

//Config is the complete configuration.
type Config struct {
	Log      logging.Config `mapstructure:"log"`
	Table    TableConfig    `mapstructure:"table"`
	Parse    ParseConfig    `mapstructure:"parse"`
	Geometry GeometryConfig `mapstructure:"geometry"`
	Bonding  BondingConfig  `mapstructure:"bonding"`
	Output   OutputConfig   `mapstructure:"output"`
	Batch    BatchConfig    `mapstructure:"batch"`
}

//SetDefaults registers the default value of every key in v. Keys need a
//default for viper to look them up in the environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_paths", []string{})
	v.SetDefault("table.path", "")
	v.SetDefault("parse.max_atoms", lewis.DefaultMaxAtoms)
	v.SetDefault("geometry.lone_pair_basis", lewis.BasisElectrons.String())
	v.SetDefault("bonding.double_bond_pairs", lewis.DefaultDoubleBondPairs().Strings())
	v.SetDefault("output.format", FormatText)
	v.SetDefault("batch.workers", 4)
}

//NewViper returns a viper instance with the defaults and the environment
//bindings in place, and no config file.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

//ReadFile makes v read the YAML file path, if path is not empty.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: reading %q: %w", path, err)
	}
	return nil
}

//Load reads the configuration from the file path (which can be empty), the
//environment and the defaults, and validates it.
func Load(path string) (*Config, error) {
	v := NewViper()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return FromViper(v)
}

//FromViper unmarshals and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

//Default returns the configuration with all the defaults and nothing else.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := FromViper(v)
	if err != nil {
		panic("config: invalid defaults: " + err.Error())
	}
	return cfg
}

//Validate checks every setting, and returns all the problems found.
func (C *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(C.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if !contains(logging.Formats, strings.ToLower(C.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format: %q is not one of %v", C.Log.Format, logging.Formats))
	}
	if C.Parse.MaxAtoms < 0 {
		errs = append(errs, fmt.Errorf("parse.max_atoms: must not be negative, got %d", C.Parse.MaxAtoms))
	}
	if _, err := lewis.ParseLonePairBasis(C.Geometry.LonePairBasis); err != nil {
		errs = append(errs, fmt.Errorf("geometry.lone_pair_basis: %w", err))
	}
	if _, err := lewis.ParseDoubleBondPairs(C.Bonding.DoubleBondPairs); err != nil {
		errs = append(errs, fmt.Errorf("bonding.double_bond_pairs: %w", err))
	}
	formats := []string{FormatText, FormatJSON, FormatXYZ}
	if !contains(formats, C.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format: %q is not one of %v", C.Output.Format, formats))
	}
	if C.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers: must be at least 1, got %d", C.Batch.Workers))
	}
	return errors.Join(errs...)
}

//EngineOptions converts the configuration into options for lewis.NewEngine.
func (C *Config) EngineOptions() (lewis.Options, error) {
	basis, err := lewis.ParseLonePairBasis(C.Geometry.LonePairBasis)
	if err != nil {
		return lewis.Options{}, err
	}
	pairs, err := lewis.ParseDoubleBondPairs(C.Bonding.DoubleBondPairs)
	if err != nil {
		return lewis.Options{}, err
	}
	return lewis.Options{
		MaxAtoms:        C.Parse.MaxAtoms,
		DoubleBondPairs: pairs,
		LonePairBasis:   basis,
	}, nil
}

//PeriodicTable returns the table in table.path, or the embedded one.
func (C *Config) PeriodicTable() (*ptable.Table, error) {
	if C.Table.Path == "" {
		return ptable.Default(), nil
	}
	return ptable.LoadFile(C.Table.Path)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
