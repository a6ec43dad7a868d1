package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"shiftbot/internal/registry"
)

// ImportKind classifies one line's outcome in a batch import.
type ImportKind int

const (
	ImportedEmployee ImportKind = iota
	ImportedSchedule
	ImportFileMissing
)

// ImportResult is reported to the caller for rendering; skipped lines
// (already-registered employees, schedules for unknown ids, malformed
// input) produce no result, only a log entry.
type ImportResult struct {
	Kind       ImportKind
	EmployeeID string
	Name       string
	Weekday    time.Weekday
	TimeRange  string
}

// WeekdayParser resolves a weekday token, typically in the active locale
// with a fallback to the canonical English names.
type WeekdayParser func(name string) (time.Weekday, error)

// Importer bulk-loads employees and schedules from a pipe-delimited feed:
//
//	employee|<id>|<name>
//	schedule|<id>|<weekday>|<start-end>
//
// The import is additive only: it never overwrites a registered employee
// and never touches shifts.
type Importer struct {
	path   string
	logger *logrus.Logger
}

func NewImporter(path string) *Importer {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Importer{path: path, logger: logger}
}

// Run imports the feed into the registry. A missing feed file is normal
// and reported as a single ImportFileMissing result.
func (i *Importer) Run(reg *registry.Registry, parseDay WeekdayParser) ([]ImportResult, error) {
	f, err := os.Open(i.path)
	if errors.Is(err, fs.ErrNotExist) {
		i.logger.WithField("path", i.path).Info("No import file found, continuing without importing")
		return []ImportResult{{Kind: ImportFileMissing}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	var results []ImportResult
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if res, ok := i.importLine(reg, parseDay, line, lineNo); ok {
			results = append(results, res)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	i.logger.WithFields(logrus.Fields{
		"path":     i.path,
		"imported": len(results),
	}).Info("Batch import finished")

	return results, nil
}

func (i *Importer) importLine(reg *registry.Registry, parseDay WeekdayParser, line string, lineNo int) (ImportResult, bool) {
	parts := strings.Split(line, "|")

	switch {
	case len(parts) == 3 && parts[0] == "employee":
		id, name := parts[1], parts[2]
		if _, ok := reg.Get(id); ok {
			i.logger.WithField("employee_id", id).Debug("Employee already registered, import line ignored")
			return ImportResult{}, false
		}
		if _, err := reg.Add(id, name); err != nil {
			return ImportResult{}, false
		}
		return ImportResult{Kind: ImportedEmployee, EmployeeID: id, Name: name}, true

	case len(parts) == 4 && parts[0] == "schedule":
		id, dayName, timeRange := parts[1], parts[2], parts[3]
		emp, ok := reg.Get(id)
		if !ok {
			i.logger.WithField("employee_id", id).Debug("Employee not registered, schedule line ignored")
			return ImportResult{}, false
		}
		day, err := parseDay(dayName)
		if err != nil {
			i.logger.WithFields(logrus.Fields{
				"line":    lineNo,
				"weekday": dayName,
			}).WithError(err).Warn("Skipping schedule line with bad weekday")
			return ImportResult{}, false
		}
		if _, err := reg.SetSchedule(id, day, timeRange); err != nil {
			i.logger.WithFields(logrus.Fields{
				"line":        lineNo,
				"employee_id": id,
			}).WithError(err).Warn("Skipping schedule line")
			return ImportResult{}, false
		}
		return ImportResult{
			Kind:       ImportedSchedule,
			EmployeeID: id,
			Name:       emp.Name,
			Weekday:    day,
			TimeRange:  timeRange,
		}, true

	default:
		i.logger.WithFields(logrus.Fields{
			"path": i.path,
			"line": lineNo,
		}).Warn("Skipping malformed import line")
		return ImportResult{}, false
	}
}
