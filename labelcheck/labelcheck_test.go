package labelcheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/sirkon/typelabel/labelcheck"
)

// setFlag sets an analyzer flag for the duration of the test.
func setFlag(t *testing.T, name, value string) {
	t.Helper()

	prev := labelcheck.Analyzer.Flags.Lookup(name).Value.String()
	require.NoError(t, labelcheck.Analyzer.Flags.Set(name, value))
	t.Cleanup(func() {
		require.NoError(t, labelcheck.Analyzer.Flags.Set(name, prev))
	})
}

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, labelcheck.Analyzer,
		"derived",
		"shape",
		"placement",
		"restrictions",
	)
}

func TestAnalyzerStale(t *testing.T) {
	setFlag(t, "stale", "true")

	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, labelcheck.Analyzer, "missingfile", "uptodate", "leftover")
	analysistest.RunWithSuggestedFixes(t, testdata, labelcheck.Analyzer, "stale")
}

func TestAnalyzerStaleTestTypes(t *testing.T) {
	setFlag(t, "stale", "true")
	testdata := analysistest.TestData()

	t.Run("not generated", func(t *testing.T) {
		analysistest.Run(t, testdata, labelcheck.Analyzer, "testtypes")
	})

	t.Run("generated", func(t *testing.T) {
		setFlag(t, "tests", "true")
		analysistest.Run(t, testdata, labelcheck.Analyzer, "testlabels")
	})
}

func TestAnalyzerStaleBuildTags(t *testing.T) {
	setFlag(t, "stale", "true")
	setFlag(t, "build_tags", "!nolabels")

	analysistest.Run(t, analysistest.TestData(), labelcheck.Analyzer, "tagged")
}
