package issues_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognitedata/neat-imf-importer/pkg/issues"
)

func TestIssue_ErrorFormat(t *testing.T) {
	t.Parallel()

	plain := issues.Issue{Message: "boom"}
	assert.Equal(t, "boom", plain.Error())

	withResource := issues.Issue{Resource: "ex:Pump", Message: "boom"}
	assert.Equal(t, "ex:Pump: boom", withResource.Error())

	withFeature := issues.Issue{Resource: "ex:Pump", Feature: "name", Message: "boom"}
	assert.Equal(t, "ex:Pump (name): boom", withFeature.Error())
}

func TestNewValueError(t *testing.T) {
	t.Parallel()

	issue := issues.NewValueError("unable to parse %s", "concepts")

	assert.Equal(t, issues.SeverityError, issue.Severity)
	assert.Equal(t, "unable to parse concepts", issue.Message)
}

func TestNewRetrievalWarning(t *testing.T) {
	t.Parallel()

	issue := issues.NewRetrievalWarning("ex:Pump", "implements", "unresolved parent")

	assert.Equal(t, issues.SeverityWarning, issue.Severity)
	assert.Equal(t, "ex:Pump", issue.Resource)
	assert.Equal(t, "implements", issue.Feature)
}

func TestNewRedefinedWarning(t *testing.T) {
	t.Parallel()

	issue := issues.NewRedefinedWarning("concept", "ex:Pump", "name", "Pump", "Pumpe")

	assert.Equal(t, issues.SeverityWarning, issue.Severity)
	assert.Contains(t, issue.Message, `keeping "Pump"`)
	assert.Contains(t, issue.Message, `ignoring "Pumpe"`)
}

func TestList_Accumulation(t *testing.T) {
	t.Parallel()

	list := issues.NewList("test issues")
	assert.Equal(t, 0, list.Len())
	assert.False(t, list.HasErrors())
	require.NoError(t, list.Errors())

	list.Append(
		issues.NewRetrievalWarning("a", "f", "first"),
		issues.NewValueError("second"),
		issues.NewRetrievalWarning("b", "f", "third"),
	)

	assert.Equal(t, 3, list.Len())
	assert.True(t, list.HasErrors())

	warnings := list.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "a", warnings[0].Resource)
	assert.Equal(t, "b", warnings[1].Resource)

	err := list.Errors()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second")

	all := list.All()
	require.Len(t, all, 3)
	assert.Equal(t, issues.SeverityError, all[1].Severity)
}

func TestList_LogWarnings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))

	list := issues.NewList("import issues")
	list.Append(
		issues.NewRetrievalWarning("ex:Pump", "implements", "unresolved parent"),
		issues.NewValueError("fatal"),
	)

	list.Log(logger)

	output := buf.String()
	assert.Contains(t, output, "unresolved parent")
	assert.Contains(t, output, "ex:Pump")
	assert.NotContains(t, output, "fatal")
}

func TestList_LogNilLogger(t *testing.T) {
	t.Parallel()

	list := issues.NewList("test issues")
	list.Append(issues.NewValueError("boom"))

	assert.NotPanics(t, func() {
		list.Log(nil)
	})
}
