// Package logging provides the structured, per-run logger every Prover
// carries — the same role ctx.GetLogger() plays for a request in the
// teacher's query engine, adapted to a saturation run's lifetime
// instead of a query's.
package logging

import (
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// New returns a logger scoped to one saturation run, tagged with a
// fresh run id so concurrent Provers' log lines can be told apart.
func New() *logrus.Entry {
	return logrus.StandardLogger().WithField("run_id", uuid.NewV4().String())
}

// Step logs one given-clause iteration at Trace level: high volume,
// opt-in verbosity for deep debugging.
func Step(log *logrus.Entry, step int, given int64, weight int) {
	log.WithFields(logrus.Fields{
		"step":   step,
		"given":  given,
		"weight": weight,
	}).Trace("given-clause step")
}

// Outcome logs a saturation run's terminal result at Info level.
func Outcome(log *logrus.Entry, kind string, steps int) {
	log.WithFields(logrus.Fields{
		"outcome": kind,
		"steps":   steps,
	}).Info("saturation finished")
}

// HookPanic logs a recovered plugin hook panic at Warn level — the
// event bus keeps running, but an operator needs to know a hook
// misbehaved.
func HookPanic(log *logrus.Entry, hook string, recovered interface{}) {
	log.WithFields(logrus.Fields{
		"hook":  hook,
		"panic": recovered,
	}).Warn("plugin hook panicked; recovered")
}

// InternalError logs an invariant violation at Error level before the
// prover reports Outcome{Kind: Error}.
func InternalError(log *logrus.Entry, err error) {
	log.WithError(err).Error("internal prover error")
}
