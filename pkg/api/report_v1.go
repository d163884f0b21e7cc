// Package api defines the stable, versioned schemas written by
// ddradsim for downstream tooling. Field names are part of the public
// contract; breaking changes require a new version suffix.
package api

// RunReportV1 is the YAML run report written next to the read files.
type RunReportV1 struct {
	Version string `yaml:"version"`
	Name    string `yaml:"name"`
	Fasta   string `yaml:"fasta"`

	RE1     string `yaml:"re1"`
	RE2     string `yaml:"re2"`
	MinSize int    `yaml:"min_size"`
	MaxSize int    `yaml:"max_size"`
	ReadLen int    `yaml:"readlen"`
	NCopies int    `yaml:"ncopies"`
	Paired  bool   `yaml:"paired"`

	Scaffolds []ScaffoldReportV1 `yaml:"scaffolds"`

	TotalFragments int             `yaml:"total_fragments"`
	TotalReads     int             `yaml:"total_reads"`
	Lengths        LengthSummaryV1 `yaml:"fragment_lengths"`
	Outputs        []string        `yaml:"outputs"`
}

// ScaffoldReportV1 is the per-scaffold digestion tally.
type ScaffoldReportV1 struct {
	Name      string `yaml:"name"`
	RE1Sites  int    `yaml:"re1_sites"`
	RE2Sites  int    `yaml:"re2_sites"`
	Fragments int    `yaml:"fragments"`
}

// LengthSummaryV1 describes the retained fragment-length distribution.
type LengthSummaryV1 struct {
	Count  int     `yaml:"count"`
	Mean   float64 `yaml:"mean"`
	Median float64 `yaml:"median"`
	StdDev float64 `yaml:"stddev"`
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
	Q1     float64 `yaml:"q1"`
	Q3     float64 `yaml:"q3"`
}
