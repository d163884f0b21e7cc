// Package cli provides the ddradsim command. Every flag is bound to a
// viper key, so values can come from flags, DDRADSIM_* environment
// variables, or an optional ddradsim.yaml in the working directory,
// with flags taking precedence.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ddradsim/internal/app"
	"ddradsim/internal/config"
	"ddradsim/internal/version"
)

const (
	envPrefix      = "DDRADSIM"
	configBaseName = "ddradsim"

	fastaFlag     = "fasta"
	nameFlag      = "name"
	workdirFlag   = "workdir"
	re1Flag       = "re1"
	re2Flag       = "re2"
	ncopiesFlag   = "ncopies"
	readlenFlag   = "readlen"
	minSizeFlag   = "min-size"
	maxSizeFlag   = "max-size"
	pairedFlag    = "paired"
	threadsFlag   = "threads"
	fragmentsFlag = "fragments"
	reportFlag    = "report"
	statsFlag     = "stats"
	logFileFlag   = "log-file"
	verboseFlag   = "verbose"
)

const longDescription = `In-silico double-digest RAD (ddRAD) library simulation.

Digests a reference genome (FASTA, optionally gzipped) with two
restriction enzymes given as IUPAC recognition motifs, size-selects the
resulting fragments, and writes simulated single- or paired-end reads
as gzipped FASTQ under the working directory. Output is deterministic:
the same genome and configuration always produce byte-identical files.`

var rootCmd = &cobra.Command{
	Use:          "ddradsim",
	Short:        "in-silico ddRAD digestion and read simulation",
	Long:         longDescription,
	Version:      version.Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := fromViper()
		if err := cfg.Validate(); err != nil {
			return err
		}
		config.SetupLogger(viper.GetString(logFileFlag), viper.GetBool(verboseFlag))
		return app.Run(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cobra.CheckErr(fmt.Errorf("read %s.yaml: %w", configBaseName, err))
		}
	}

	configureFlags(rootCmd)
}

func configureFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	f.StringP(fastaFlag, "f", "", "input genome FASTA, optionally gzipped ('-' for stdin)")
	f.StringP(nameFlag, "n", "", "run/sample name used in output files and read IDs")
	f.StringP(workdirFlag, "w", ".", "output directory")

	f.String(re1Flag, config.DefaultRE1, "recognition motif of the first enzyme (IUPAC)")
	f.String(re2Flag, config.DefaultRE2, "recognition motif of the second enzyme (IUPAC)")
	f.Int(ncopiesFlag, config.DefaultNCopies, "replicate reads per retained fragment")
	f.Int(readlenFlag, config.DefaultReadLen, "simulated read length")
	f.Int(minSizeFlag, config.DefaultMinSize, "minimum retained fragment length (inclusive)")
	f.Int(maxSizeFlag, config.DefaultMaxSize, "maximum retained fragment length (inclusive)")
	f.Bool(pairedFlag, false, "paired-end mode: also write the R2 mate stream")

	f.IntP(threadsFlag, "t", 0, "digestion worker threads (0 = all CPUs)")

	f.Bool(fragmentsFlag, false, "also write <name>_fragments.tsv")
	f.Bool(reportFlag, false, "also write <name>_report.yaml")
	f.Bool(statsFlag, false, "print a fragment-length summary table")

	f.String(logFileFlag, "", "log to a rotated file instead of stderr")
	f.BoolP(verboseFlag, "v", false, "debug logging")

	f.VisitAll(func(fl *pflag.Flag) { bindFlagToConfig(fl) })
}

// bindFlagToConfig wires a flag to the viper key of the same name so
// config-file and env values feed it.
func bindFlagToConfig(fl *pflag.Flag) {
	cobra.CheckErr(viper.BindPFlag(fl.Name, fl))
}

func fromViper() config.Config {
	return config.Config{
		Fasta:     viper.GetString(fastaFlag),
		Name:      viper.GetString(nameFlag),
		Workdir:   viper.GetString(workdirFlag),
		RE1:       viper.GetString(re1Flag),
		RE2:       viper.GetString(re2Flag),
		NCopies:   viper.GetInt(ncopiesFlag),
		ReadLen:   viper.GetInt(readlenFlag),
		MinSize:   viper.GetInt(minSizeFlag),
		MaxSize:   viper.GetInt(maxSizeFlag),
		Paired:    viper.GetBool(pairedFlag),
		Threads:   viper.GetInt(threadsFlag),
		Fragments: viper.GetBool(fragmentsFlag),
		Report:    viper.GetBool(reportFlag),
		Stats:     viper.GetBool(statsFlag),
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
