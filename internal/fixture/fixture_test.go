package fixture_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dunkelmpl/textjustification/internal/fixture"
)

func TestLoad_ReferenceSuitePasses(t *testing.T) {
	suite, err := fixture.Load("testdata/reference.toml")
	require.NoError(t, err)
	require.Len(t, suite.Cases, 7)

	rep := suite.Run()
	for _, out := range rep.Outcomes {
		assert.Truef(t, out.Passed, "case %q: %s", out.Case.Name, out.Reason)
	}
	assert.True(t, rep.OK())
	assert.Equal(t, 7, rep.Passed)
	assert.Equal(t, 0, rep.Failed)
}

func TestRun_ReportsFailures(t *testing.T) {
	doc := `
[[case]]
name  = "wrong padding"
width = 16
words = ["This", "is", "an", "example", "of", "text", "justification"]
want  = ["This is an      ", "example  of text", "justification   "]

[[case]]
name       = "expected error but fits"
width      = 16
words      = ["short"]
want_error = "invalid_input"

[[case]]
name  = "unexpected error"
width = 3
words = ["toolong"]
want  = ["toolong"]

[[case]]
name  = "line count"
width = 16
words = ["solo"]
want  = ["solo            ", "extra"]
`
	suite, err := fixture.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	rep := suite.Run()
	assert.False(t, rep.OK())
	assert.Equal(t, 0, rep.Passed)
	assert.Equal(t, 4, rep.Failed)

	assert.Contains(t, rep.Outcomes[0].Reason, "line 0")
	assert.Contains(t, rep.Outcomes[1].Reason, "want error invalid_input")
	assert.Contains(t, rep.Outcomes[2].Reason, "unexpected error")
	assert.Contains(t, rep.Outcomes[3].Reason, "want 2 line(s), got 1")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", "[[case]]\nwidth = 4\n"},
		{"bad want_error", "[[case]]\nname = \"x\"\nwant_error = \"boom\"\n"},
		{"bad tie_break", "[[case]]\nname = \"x\"\ntie_break = \"middle\"\n"},
		{"syntax", "[[case]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fixture.Parse(strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := fixture.Load("testdata/does-not-exist.toml")
	assert.Error(t, err)
}

func TestTrimWords(t *testing.T) {
	got := fixture.TrimWords([]string{"  a", "b  ", "\t", "", " c\n"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Empty(t, fixture.TrimWords(nil))
}
