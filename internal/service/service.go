// Package service implements the shift ledger, the automatic logger and the
// report aggregator on top of the employee registry. Validation always
// precedes mutation: a failing operation leaves the registry untouched.
package service

import "github.com/sirupsen/logrus"

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return logger
}
