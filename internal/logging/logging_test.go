package logging_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/zetaprover/zeta/internal/logging"
)

func TestNewTagsEachLoggerWithAUniqueRunID(t *testing.T) {
	a := logging.New()
	b := logging.New()
	require.NotEqual(t, a.Data["run_id"], b.Data["run_id"])
}

func TestStepLogsAtTraceLevel(t *testing.T) {
	base := logrus.New()
	base.SetLevel(logrus.TraceLevel)
	var buf bytes.Buffer
	base.SetOutput(&buf)
	entry := base.WithField("run_id", "test")

	logging.Step(entry, 3, 42, 7)

	require.Contains(t, buf.String(), "given-clause step")
	require.Contains(t, buf.String(), "step=3")
}

func TestOutcomeLogsAtInfoLevel(t *testing.T) {
	base := logrus.New()
	var buf bytes.Buffer
	base.SetOutput(&buf)
	entry := base.WithField("run_id", "test")

	logging.Outcome(entry, "refutation", 9)

	require.Contains(t, buf.String(), "saturation finished")
	require.Contains(t, buf.String(), "outcome=refutation")
}

func TestHookPanicLogsAtWarnLevel(t *testing.T) {
	base := logrus.New()
	var buf bytes.Buffer
	base.SetOutput(&buf)
	entry := base.WithField("run_id", "test")

	logging.HookPanic(entry, "redundancy", "boom")

	require.Contains(t, buf.String(), "plugin hook panicked")
	require.Contains(t, buf.String(), "hook=redundancy")
}
