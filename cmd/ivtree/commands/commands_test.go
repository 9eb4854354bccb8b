package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	t.Parallel()

	low, high, err := parsePair("3:7")
	require.NoError(t, err)
	assert.Equal(t, int64(3), low)
	assert.Equal(t, int64(7), high)
}

func TestParsePairMissingSeparator(t *testing.T) {
	t.Parallel()

	_, _, err := parsePair("37")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a low:high pair")
}

func TestParsePairInvalidLow(t *testing.T) {
	t.Parallel()

	_, _, err := parsePair("x:7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid low endpoint")
}

func TestParsePairInvalidHigh(t *testing.T) {
	t.Parallel()

	_, _, err := parsePair("3:y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid high endpoint")
}

func TestParsePairHighLessThanLow(t *testing.T) {
	t.Parallel()

	_, _, err := parsePair("7:3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "high < low")
}

func TestParseSpansEmpty(t *testing.T) {
	t.Parallel()

	spans, err := parseSpans("")
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestParseSpansMultiple(t *testing.T) {
	t.Parallel()

	spans, err := parseSpans("0:1, 2:3,4:5")
	require.NoError(t, err)
	assert.Equal(t, []span{{0, 1}, {2, 3}, {4, 5}}, spans)
}

func TestParseSpansPropagatesPairError(t *testing.T) {
	t.Parallel()

	_, err := parseSpans("0:1,bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a low:high pair")
}

// withPersistentFlags attaches the --verbose/--quiet flags a real root
// command would provide, so newLogger can read them during a standalone
// command test.
func withPersistentFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().Bool("quiet", false, "")

	return cmd
}

func TestInsertCommandReportsSize(t *testing.T) {
	t.Parallel()

	cmd := withPersistentFlags(NewInsertCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--from", "0:1,2:3"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "inserted 2 intervals")
}

func TestInsertCommandRejectsBadSpan(t *testing.T) {
	t.Parallel()

	cmd := withPersistentFlags(NewInsertCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--from", "nope"})

	require.Error(t, cmd.Execute())
}

func TestFindCommandReportsOverlaps(t *testing.T) {
	t.Parallel()

	cmd := withPersistentFlags(NewFindCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--from", "0:10,20:30", "5", "5"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[0, 10]")
}

func TestFindCommandReportsNoOverlaps(t *testing.T) {
	t.Parallel()

	cmd := withPersistentFlags(NewFindCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--from", "0:1", "5", "5"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "(no overlaps)")
}

func TestFindCommandRejectsBadEndpoint(t *testing.T) {
	t.Parallel()

	cmd := withPersistentFlags(NewFindCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--from", "0:1", "x", "5"})

	require.Error(t, cmd.Execute())
}

func TestDumpCommandPrintsTreeShape(t *testing.T) {
	t.Parallel()

	cmd := withPersistentFlags(NewDumpCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--from", "0:1,2:3,4:5"})

	require.NoError(t, cmd.Execute())
	assert.NotEmpty(t, out.String())
}
