// Package config loads shaclvalidate's run configuration: the data and
// shapes files to validate, the output format, and the concurrency and
// SPARQL-backend knobs from spec.md §5/§9.
//
// Grounded on Cayley's internal/config: a plain JSON/YAML-tagged struct
// plus a Load that never panics and needs no file (an empty path skips
// the file; a named file that cannot be read is an error), and on the
// cmd/cayley/command viper key-namespacing idiom ("store.backend",
// "store.address") for the flag/env/file precedence chain.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Viper key names, namespaced the way cmd/cayley/command binds its
// store.* keys.
const (
	KeyDataFile     = "input.data"
	KeyShapesFile   = "input.shapes"
	KeyFormat       = "input.format"
	KeyOutputFormat = "output.format"
	KeyOutputFile   = "output.file"
	KeySeverity     = "output.min_severity"
	KeyWorkers      = "engine.workers"
	KeyTimeout      = "engine.timeout"
	KeySparqlDSN    = "sparql.dsn"
)

// Config is shaclvalidate's resolved run configuration (spec.md §1/§9).
type Config struct {
	DataFile     string        `mapstructure:"data_file" yaml:"data_file"`
	ShapesFile   string        `mapstructure:"shapes_file" yaml:"shapes_file"`
	Format       string        `mapstructure:"format" yaml:"format"`
	OutputFormat string        `mapstructure:"output_format" yaml:"output_format"`
	OutputFile   string        `mapstructure:"output_file" yaml:"output_file"`
	MinSeverity  string        `mapstructure:"min_severity" yaml:"min_severity"`
	Workers      int           `mapstructure:"workers" yaml:"workers"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
	SparqlDSN    string        `mapstructure:"sparql_dsn" yaml:"sparql_dsn"`
}

// Defaults is the zero-flag, zero-file configuration.
func Defaults() Config {
	return Config{
		Format:       "auto",
		OutputFormat: "text",
		MinSeverity:  "Violation",
		Workers:      0, // 0 means runtime.GOMAXPROCS(0), resolved by validate.Engine
		Timeout:      30 * time.Second,
	}
}

// Load builds the viper instance shaclvalidate reads its configuration
// from: defaults, then an optional YAML file, then SHACLVALIDATE_*
// environment variables, highest precedence last (spec.md §9's
// "flags/env/file" layering, mirrored from cmd/cayley's viper setup).
func Load(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SHACLVALIDATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Defaults()
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyOutputFormat, def.OutputFormat)
	v.SetDefault(KeySeverity, def.MinSeverity)
	v.SetDefault(KeyWorkers, def.Workers)
	v.SetDefault(KeyTimeout, def.Timeout)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: could not read %q: %w", file, err)
		}
	}
	return v, nil
}

// FromViper extracts a Config snapshot from a populated viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		DataFile:     v.GetString(KeyDataFile),
		ShapesFile:   v.GetString(KeyShapesFile),
		Format:       v.GetString(KeyFormat),
		OutputFormat: v.GetString(KeyOutputFormat),
		OutputFile:   v.GetString(KeyOutputFile),
		MinSeverity:  v.GetString(KeySeverity),
		Workers:      v.GetInt(KeyWorkers),
		Timeout:      v.GetDuration(KeyTimeout),
		SparqlDSN:    v.GetString(KeySparqlDSN),
	}
}
