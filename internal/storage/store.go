// Package storage persists the registry as a line-oriented, pipe-delimited
// record file and loads the optional batch import feed. Record shapes, all
// keyed by employee id:
//
//	<id>|<name>|name
//	<id>|<name>|schedule|<weekday>|<start-end>
//	<id>|<name>|shift|<YYYY-MM-DD>|<start>|<end>|<hours>
//
// Weekday tokens are stored canonically in English so a data file written
// under one locale stays readable under the other.
package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"shiftbot/internal/models"
	"shiftbot/internal/registry"
	"shiftbot/internal/timeutil"
)

const (
	recordName     = "name"
	recordSchedule = "schedule"
	recordShift    = "shift"
)

type Store struct {
	path   string
	logger *logrus.Logger
}

func NewStore(path string) *Store {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Store{path: path, logger: logger}
}

// Load reads the record file into the registry. A missing file is a normal
// first run; malformed records are skipped with a warning rather than
// aborting the load.
func (s *Store) Load(reg *registry.Registry) error {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.WithField("path", s.path).Info("No data file found, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	loaded := 0
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := s.loadRecord(reg, line); err != nil {
			s.logger.WithFields(logrus.Fields{
				"path": s.path,
				"line": lineNo,
			}).WithError(err).Warn("Skipping malformed record")
			continue
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read data file: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"path":      s.path,
		"records":   loaded,
		"employees": reg.Len(),
	}).Info("Data loaded")

	return nil
}

func (s *Store) loadRecord(reg *registry.Registry, line string) error {
	parts := strings.Split(line, "|")
	if len(parts) < 3 {
		return errors.New("too few fields")
	}
	id, name, kind := parts[0], parts[1], parts[2]

	emp, ok := reg.Get(id)
	if !ok {
		var err error
		if emp, err = reg.Add(id, name); err != nil {
			return err
		}
	}

	switch kind {
	case recordName:
		emp.Name = name
	case recordSchedule:
		if len(parts) != 5 {
			return fmt.Errorf("schedule record has %d fields, want 5", len(parts))
		}
		day, err := models.ParseWeekday(parts[3])
		if err != nil {
			return err
		}
		if !strings.Contains(parts[4], "-") {
			return fmt.Errorf("%w: %q", models.ErrInvalidTimeRange, parts[4])
		}
		emp.Schedule[day] = parts[4]
	case recordShift:
		if len(parts) != 7 {
			return fmt.Errorf("shift record has %d fields, want 7", len(parts))
		}
		hours, err := strconv.ParseFloat(parts[6], 64)
		if err != nil {
			return fmt.Errorf("bad hours %q: %w", parts[6], err)
		}
		emp.Shifts[parts[3]] = models.Shift{Start: parts[4], End: parts[5], Hours: hours}
	default:
		return fmt.Errorf("unknown record kind %q", kind)
	}

	return nil
}

// Save serializes the registry in registration order: the name record
// first, then schedule records Monday through Sunday, then shift records in
// date order. The file is written to a temp path and renamed so a crash
// mid-write cannot truncate existing data.
func (s *Store) Save(reg *registry.Registry) error {
	var buf bytes.Buffer
	for _, emp := range reg.List() {
		fmt.Fprintf(&buf, "%s|%s|%s\n", emp.ID, emp.Name, recordName)

		for i := 0; i < 7; i++ {
			day := time.Weekday((int(time.Monday) + i) % 7)
			if timeRange, ok := emp.Schedule[day]; ok {
				fmt.Fprintf(&buf, "%s|%s|%s|%s|%s\n", emp.ID, emp.Name, recordSchedule, day.String(), timeRange)
			}
		}

		dates := make([]string, 0, len(emp.Shifts))
		for date := range emp.Shifts {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			shift := emp.Shifts[date]
			fmt.Fprintf(&buf, "%s|%s|%s|%s|%s|%s|%s\n",
				emp.ID, emp.Name, recordShift, date, shift.Start, shift.End, timeutil.FormatHours(shift.Hours))
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename data file: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"path":      s.path,
		"employees": reg.Len(),
	}).Info("Data saved")

	return nil
}
