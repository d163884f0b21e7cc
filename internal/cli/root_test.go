package cli

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddradsim/internal/config"
)

func TestFlagsRegistered(t *testing.T) {
	for _, name := range []string{
		fastaFlag, nameFlag, workdirFlag, re1Flag, re2Flag,
		ncopiesFlag, readlenFlag, minSizeFlag, maxSizeFlag,
		pairedFlag, threadsFlag, fragmentsFlag, reportFlag,
		statsFlag, logFileFlag, verboseFlag,
	} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "flag %q not registered", name)
	}
}

func TestDefaultsRequireInputs(t *testing.T) {
	cfg := fromViper()
	err := cfg.Validate()
	require.Error(t, err, "fasta and name have no defaults")
}

func TestDefaultsOtherwiseValid(t *testing.T) {
	cfg := fromViper()
	cfg.Fasta = "genome.fa"
	cfg.Name = "sim"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultRE1, cfg.RE1)
	assert.Equal(t, config.DefaultRE2, cfg.RE2)
	assert.Equal(t, config.DefaultReadLen, cfg.ReadLen)
}

func TestViperValuesFeedConfig(t *testing.T) {
	viper.Set(ncopiesFlag, 3)
	viper.Set(re1Flag, "GAATTC")
	t.Cleanup(func() {
		viper.Set(ncopiesFlag, config.DefaultNCopies)
		viper.Set(re1Flag, config.DefaultRE1)
	})

	cfg := fromViper()
	assert.Equal(t, 3, cfg.NCopies)
	assert.Equal(t, "GAATTC", cfg.RE1)
}
