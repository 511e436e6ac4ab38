package common

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"Cassels/cassels"
)

// DefaultCutoff is the house squared bound used when none is configured.
const DefaultCutoff = "5.1"

// Config is the YAML form of a search:
//
//	cutoff: "5.01"
//	threads: 8
//	tables: tables.txt
//	output: results.txt
//	runs:
//	  - {n: 70, len: 5}
//	  - {n: 420, len: 6}
type Config struct {
	Cutoff  string        `yaml:"cutoff"`
	Threads int           `yaml:"threads"`
	Tables  string        `yaml:"tables"`
	Output  string        `yaml:"output"`
	Runs    []cassels.Run `yaml:"runs"`
}

// LoadConfig reads a configuration file. Missing fields stay zero.
func LoadConfig(path string) (Config, error) {
	config := Config{}
	txt, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(txt, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	for _, run := range config.Runs {
		if run.Modulus == 0 || run.MaxLen < 3 {
			return config, fmt.Errorf("config %s: %w: %v", path, ErrInvalidRun, run)
		}
	}
	return config, nil
}
