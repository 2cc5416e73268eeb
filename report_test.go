// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	a, b := basic("a", 0.2), basic("b", 0.3)
	tree := mktree(t, gate("top", Xor, 0, a, b))

	set := DefaultSettings()
	set.Probability = true
	res := analyze(t, tree, set)

	var buf strings.Builder
	rep := Reporter{
		Software: "SCRAM",
		Version:  "0.1.0",
		Now:      time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, rep.Report(&buf, res))
	out := buf.String()

	require.Contains(t, out, `<software name="SCRAM" version="0.1.0">`)
	require.Contains(t, out, `<time>2021-06-01 12:00:00</time>`)
	require.Contains(t, out, `<calculation-methods name="mocus">`)
	require.Contains(t, out, `<limit-order>20</limit-order>`)
	require.Contains(t, out, `<basic-events>2</basic-events>`)
	require.Contains(t, out, `<sum-of-products name="top" basic-events="2" products="2"`)
	require.Contains(t, out, `<basic-event name="a">`)
	require.Contains(t, out, "<not>")
	require.Contains(t, out, `order="2"`)

	// Literals keep their cut-set order: "not a" precedes "b" in the first
	// product.
	first := out[strings.Index(out, "<product"):]
	require.Less(t, strings.Index(first, `name="a"`), strings.Index(first, `name="b"`))
}

func TestReportDeterminism(t *testing.T) {
	a, b := basic("a", 0.1), basic("b", 0.2)
	tree := mktree(t, gate("top", Or, 0, a, b))
	res := analyze(t, tree, DefaultSettings())

	rep := Reporter{Software: "SCRAM", Version: "test", Now: time.Unix(0, 0).UTC()}
	var one, two strings.Builder
	require.NoError(t, rep.Report(&one, res))
	require.NoError(t, rep.Report(&two, res))
	require.Equal(t, one.String(), two.String())
}

func TestReportNoResults(t *testing.T) {
	var buf strings.Builder
	err := Reporter{}.Report(&buf)
	var verr *ValidityError
	require.ErrorAs(t, err, &verr)
}

func TestReportWriteFailure(t *testing.T) {
	a, b := basic("a", 0.1), basic("b", 0.2)
	tree := mktree(t, gate("top", Or, 0, a, b))
	res := analyze(t, tree, DefaultSettings())

	err := Reporter{Software: "SCRAM"}.Report(failingWriter{}, res)
	var ioerr *IOError
	require.ErrorAs(t, err, &ioerr)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, context.DeadlineExceeded
}
