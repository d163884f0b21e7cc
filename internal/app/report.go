package app

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ddradsim-core/digest"
	"ddradsim/internal/config"
	"ddradsim/internal/output"
	"ddradsim/internal/stats"
	"ddradsim/internal/version"
	"ddradsim/pkg/api"
)

// FragmentsFile is the path of the optional fragment table.
func FragmentsFile(cfg config.Config) string {
	return filepath.Join(cfg.Workdir, cfg.Name+"_fragments.tsv")
}

// ReportFile is the path of the optional YAML run report.
func ReportFile(cfg config.Config) string {
	return filepath.Join(cfg.Workdir, cfg.Name+"_report.yaml")
}

func writeFragmentsTSV(cfg config.Config, results []digest.ScaffoldDigest) error {
	path := FragmentsFile(cfg)
	fh, err := os.Create(path + ".partial")
	if err != nil {
		return fmt.Errorf("fragments: %w", err)
	}
	if err := output.WriteTSV(fh, results, true); err != nil {
		_ = fh.Close()
		_ = os.Remove(path + ".partial")
		return fmt.Errorf("fragments: %w", err)
	}
	if err := fh.Close(); err != nil {
		_ = os.Remove(path + ".partial")
		return fmt.Errorf("fragments: %w", err)
	}
	return os.Rename(path+".partial", path)
}

func writeReport(cfg config.Config, results []digest.ScaffoldDigest, s stats.Summary, nReads int) error {
	rep := buildReport(cfg, results, s, nReads)
	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	path := ReportFile(cfg)
	if err := os.WriteFile(path+".partial", data, 0o644); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return os.Rename(path+".partial", path)
}

func buildReport(cfg config.Config, results []digest.ScaffoldDigest, s stats.Summary, nReads int) api.RunReportV1 {
	rep := api.RunReportV1{
		Version: version.Version,
		Name:    cfg.Name,
		Fasta:   cfg.Fasta,
		RE1:     cfg.RE1,
		RE2:     cfg.RE2,
		MinSize: cfg.MinSize,
		MaxSize: cfg.MaxSize,
		ReadLen: cfg.ReadLen,
		NCopies: cfg.NCopies,
		Paired:  cfg.Paired,
		Lengths: api.LengthSummaryV1{
			Count:  s.Count,
			Mean:   s.Mean,
			Median: s.Median,
			StdDev: s.StdDev,
			Min:    s.Min,
			Max:    s.Max,
			Q1:     s.Q1,
			Q3:     s.Q3,
		},
		TotalReads: nReads,
		Outputs:    []string{ReadFile(cfg, 1)},
	}
	if cfg.Paired {
		rep.Outputs = append(rep.Outputs, ReadFile(cfg, 2))
	}
	for _, r := range results {
		rep.Scaffolds = append(rep.Scaffolds, api.ScaffoldReportV1{
			Name:      r.Scaffold,
			RE1Sites:  r.NumSites[0],
			RE2Sites:  r.NumSites[1],
			Fragments: len(r.Fragments),
		})
		rep.TotalFragments += len(r.Fragments)
	}
	return rep
}
