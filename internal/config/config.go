// Package config holds the validated, immutable run configuration.
package config

import (
	"fmt"

	"ddradsim-core/enzyme"
)

// Defaults mirror a typical ddRAD prep: PstI x EcoRI, one copy per
// fragment, 100 bp reads, 100-800 bp size selection.
const (
	DefaultRE1     = "CTGCAG"
	DefaultRE2     = "AATTC"
	DefaultNCopies = 1
	DefaultReadLen = 100
	DefaultMinSize = 100
	DefaultMaxSize = 800
)

// ConfigError reports an invalid configuration. All validation happens
// eagerly at construction; nothing is discovered mid-run.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config: " + e.Msg }

func errf(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// Config is built once from flags/env/config-file and never mutated.
type Config struct {
	Fasta   string // input genome path ("-" for stdin)
	Name    string // run/sample name; prefixes output files and read IDs
	Workdir string // output directory

	RE1 string // IUPAC recognition motif of the first enzyme
	RE2 string // IUPAC recognition motif of the second enzyme

	NCopies int // replicate reads per retained fragment
	ReadLen int // simulated read length
	MinSize int // inclusive fragment-size window
	MaxSize int
	Paired  bool // emit R2 stream (paired-end)

	Threads int // digestion workers; 0 = all CPUs

	Fragments bool // also write <name>_fragments.tsv
	Report    bool // also write <name>_report.yaml
	Stats     bool // print fragment-length summary table
}

// Validate checks the whole configuration and returns a *ConfigError on
// the first violation. Motif content is checked by compiling, so every
// non-IUPAC character is rejected here rather than during the scan.
func (c Config) Validate() error {
	if c.Fasta == "" {
		return errf("input fasta path is required")
	}
	if c.Name == "" {
		return errf("run name is required")
	}
	if c.Workdir == "" {
		return errf("workdir is required")
	}
	if c.NCopies <= 0 {
		return errf("ncopies must be positive, got %d", c.NCopies)
	}
	if c.ReadLen <= 0 {
		return errf("readlen must be positive, got %d", c.ReadLen)
	}
	if c.MinSize <= 0 || c.MaxSize <= 0 {
		return errf("size window bounds must be positive, got [%d, %d]", c.MinSize, c.MaxSize)
	}
	if c.MinSize > c.MaxSize {
		return errf("min size %d exceeds max size %d", c.MinSize, c.MaxSize)
	}
	if c.Threads < 0 {
		return errf("threads must be >= 0, got %d", c.Threads)
	}
	if _, _, err := c.Motifs(); err != nil {
		return &ConfigError{Msg: err.Error()}
	}
	return nil
}

// Motifs compiles the two recognition motifs.
func (c Config) Motifs() (re1, re2 enzyme.Motif, err error) {
	re1, err = enzyme.Compile(enzyme.RE1, c.RE1)
	if err != nil {
		return
	}
	re2, err = enzyme.Compile(enzyme.RE2, c.RE2)
	return
}
