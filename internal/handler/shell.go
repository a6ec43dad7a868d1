// Package handler is the interactive command shell. It parses
// whitespace-delimited commands, dispatches to the core services and
// renders every outcome through the active locale; the core itself never
// formats user-facing text. Every command either commits and reports or
// rejects and reports, there is no silent path.
package handler

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"shiftbot/internal/config"
	"shiftbot/internal/locale"
	"shiftbot/internal/models"
	"shiftbot/internal/registry"
	"shiftbot/internal/service"
	"shiftbot/internal/storage"
	"shiftbot/internal/timeutil"
)

type Shell struct {
	reg      *registry.Registry
	store    *storage.Store
	importer *storage.Importer
	shifts   *service.ShiftService
	autolog  *service.AutoLogService
	reports  *service.ReportService
	loc      *locale.Locale
	cfg      *config.Config
	in       io.Reader
	out      io.Writer
	logger   *logrus.Logger
}

func New(
	reg *registry.Registry,
	store *storage.Store,
	importer *storage.Importer,
	shifts *service.ShiftService,
	autolog *service.AutoLogService,
	reports *service.ReportService,
	loc *locale.Locale,
	cfg *config.Config,
	in io.Reader,
	out io.Writer,
) *Shell {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Shell{
		reg:      reg,
		store:    store,
		importer: importer,
		shifts:   shifts,
		autolog:  autolog,
		reports:  reports,
		loc:      loc,
		cfg:      cfg,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run drives one interactive session: load the data file, apply the batch
// import feed, auto-log today's shifts, then read commands until the exit
// verb. Exit saves the data file and writes the weekly report.
func (h *Shell) Run(ref time.Time) error {
	if err := h.store.Load(h.reg); err != nil {
		return err
	}

	results, err := h.importer.Run(h.reg, h.loc.ParseWeekday)
	if err != nil {
		return err
	}
	h.PrintImport(results)

	h.printAutoLog(h.autolog.LogToday(ref))

	fmt.Fprintln(h.out, h.loc.Messages.Welcome)
	fmt.Fprintln(h.out, h.loc.Messages.TypeHelp)

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			break
		}

		// The whole line is lowercased before splitting, like the
		// original tool: ids and names are case-insensitive by fiat.
		parts := strings.Fields(strings.ToLower(strings.TrimSpace(scanner.Text())))
		if len(parts) == 0 {
			continue
		}
		if parts[0] == h.loc.CmdExit {
			break
		}

		h.dispatch(parts, ref)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read command: %w", err)
	}

	return h.shutdown(ref)
}

func (h *Shell) dispatch(parts []string, ref time.Time) {
	switch {
	case parts[0] == h.loc.CmdHelp:
		fmt.Fprintln(h.out, h.loc.Messages.Help)
	case parts[0] == h.loc.CmdAdd && len(parts) >= 3:
		h.addEmployee(parts)
	case parts[0] == h.loc.CmdSchedule && len(parts) == 4:
		h.setSchedule(parts)
	case parts[0] == h.loc.CmdShift && len(parts) == 5:
		h.recordShift(parts, ref)
	case parts[0] == h.loc.CmdHours && len(parts) == 4:
		h.totalHours(parts, ref)
	case parts[0] == h.loc.CmdEdit && len(parts) == 5:
		h.editShift(parts, ref)
	case parts[0] == h.loc.CmdList:
		h.listEmployees()
	case parts[0] == h.loc.CmdAuto:
		h.printAutoLog(h.autolog.LogToday(ref))
	default:
		fmt.Fprintln(h.out, h.loc.Messages.UnknownCommand)
	}
}

// addEmployee handles: add <name...> <id>. The name may span several
// tokens; the id is always the last one.
func (h *Shell) addEmployee(parts []string) {
	id := parts[len(parts)-1]
	name := strings.Trim(strings.Join(parts[1:len(parts)-1], " "), `"`)

	emp, err := h.reg.Add(id, name)
	if err != nil {
		h.printError(err, id, "", time.Time{})
		return
	}
	fmt.Fprintf(h.out, h.loc.Messages.EmployeeAdded+"\n", emp.Name, emp.ID)
}

// setSchedule handles: schedule <id> <weekday> <start-end>.
func (h *Shell) setSchedule(parts []string) {
	id, dayName, timeRange := parts[1], parts[2], parts[3]

	day, err := h.loc.ParseWeekday(dayName)
	if err != nil {
		h.printError(err, id, "", time.Time{})
		return
	}

	emp, err := h.reg.SetSchedule(id, day, timeRange)
	if err != nil {
		h.printError(err, id, "", time.Time{})
		return
	}
	fmt.Fprintf(h.out, h.loc.Messages.ScheduleSet+"\n", h.loc.WeekdayName(day), emp.Name, timeRange)
}

// recordShift handles: shift <id> <DD-MM-YYYY> <start> <end>.
func (h *Shell) recordShift(parts []string, ref time.Time) {
	id, dateText, start, end := parts[1], parts[2], parts[3], parts[4]

	shift, err := h.shifts.Record(id, dateText, start, end, ref)
	if err != nil {
		h.printError(err, id, dateText, ref)
		return
	}
	emp, _ := h.reg.Get(id)
	fmt.Fprintf(h.out, h.loc.Messages.ShiftRecorded+"\n",
		emp.Name, dateText, shift.Start, shift.End, timeutil.FormatHours(shift.Hours))
}

// editShift handles: edit <id> <DD-MM-YYYY> <start> <end>.
func (h *Shell) editShift(parts []string, ref time.Time) {
	id, dateText, start, end := parts[1], parts[2], parts[3], parts[4]

	shift, err := h.shifts.Edit(id, dateText, start, end)
	if err != nil {
		h.printError(err, id, dateText, ref)
		return
	}
	emp, _ := h.reg.Get(id)
	fmt.Fprintf(h.out, h.loc.Messages.ShiftEdited+"\n",
		emp.Name, dateText, shift.Start, shift.End, timeutil.FormatHours(shift.Hours))
}

// totalHours handles: hours <id> <from> <to>.
func (h *Shell) totalHours(parts []string, ref time.Time) {
	id, fromText, toText := parts[1], parts[2], parts[3]

	total, err := h.shifts.TotalHours(id, fromText, toText, ref)
	if err != nil {
		h.printError(err, id, "", ref)
		return
	}
	emp, _ := h.reg.Get(id)
	fmt.Fprintf(h.out, h.loc.Messages.TotalHours+"\n",
		emp.Name, fromText, toText, timeutil.FormatHours(total))
}

func (h *Shell) listEmployees() {
	employees := h.reg.List()
	if len(employees) == 0 {
		fmt.Fprintln(h.out, h.loc.Messages.ListEmpty)
		return
	}
	fmt.Fprintln(h.out, h.loc.Messages.ListHeader)
	for _, emp := range employees {
		fmt.Fprintf(h.out, h.loc.Messages.ListEntry+"\n", emp.Name, emp.ID)
	}
}

func (h *Shell) printAutoLog(results []service.AutoLogResult) {
	m := h.loc.Messages
	for _, res := range results {
		switch res.Outcome {
		case service.AutoLogged:
			fmt.Fprintf(h.out, m.AutoLogged+"\n",
				res.Name, res.Date, res.Shift.Start, res.Shift.End, timeutil.FormatHours(res.Shift.Hours))
		case service.AutoLogConflict:
			fmt.Fprintf(h.out, m.AutoConflict+"\n",
				res.Name, res.Date, res.Existing.Start, res.Existing.End)
		case service.AutoLogSkipped:
			fmt.Fprintf(h.out, m.AutoSkipped+"\n", res.Name, res.Date)
		}
	}
}

func (h *Shell) PrintImport(results []storage.ImportResult) {
	m := h.loc.Messages
	for _, res := range results {
		switch res.Kind {
		case storage.ImportedEmployee:
			fmt.Fprintf(h.out, m.ImportedEmployee+"\n", res.Name, res.EmployeeID)
		case storage.ImportedSchedule:
			fmt.Fprintf(h.out, m.ImportedSchedule+"\n",
				res.EmployeeID, h.loc.WeekdayName(res.Weekday), res.TimeRange)
		case storage.ImportFileMissing:
			fmt.Fprintf(h.out, m.ImportMissing+"\n", h.cfg.ImportFile)
		}
	}
}

// printError maps a core error kind to its locale message. The id and date
// the user typed give the templates their arguments; ref fills in the
// date-limit messages.
func (h *Shell) printError(err error, id, dateText string, ref time.Time) {
	m := h.loc.Messages
	var conflict *models.ConflictError

	var msg string
	switch {
	case errors.As(err, &conflict):
		msg = fmt.Sprintf(m.ShiftConflict,
			timeutil.DisplayDate(conflict.Date), conflict.Existing.Start, conflict.Existing.End)
	case errors.Is(err, models.ErrDuplicateEmployee):
		msg = fmt.Sprintf(m.EmployeeExists, id)
	case errors.Is(err, models.ErrUnknownEmployee):
		msg = fmt.Sprintf(m.EmployeeNotFound, id)
	case errors.Is(err, models.ErrInvalidWeekday):
		msg = m.InvalidWeekday
	case errors.Is(err, models.ErrInvalidTimeRange):
		msg = m.InvalidTimeRange
	case errors.Is(err, models.ErrInvalidTimeFormat):
		msg = m.InvalidTime
	case errors.Is(err, models.ErrFutureOrInvalidDate):
		msg = fmt.Sprintf(m.FutureOrInvalidDate, timeutil.FormatDate(ref))
	case errors.Is(err, models.ErrInvalidDateRange):
		msg = fmt.Sprintf(m.InvalidDateRange, timeutil.FormatDate(ref))
	case errors.Is(err, models.ErrShiftNotFound):
		msg = fmt.Sprintf(m.ShiftNotFound, dateText)
	case errors.Is(err, models.ErrNonPositiveDuration):
		msg = m.NonPositiveDuration
	default:
		msg = err.Error()
	}

	fmt.Fprintln(h.out, msg)
}

// shutdown saves the data file and writes the weekly report file.
func (h *Shell) shutdown(ref time.Time) error {
	if err := h.store.Save(h.reg); err != nil {
		return err
	}

	rep := h.reports.Weekly(ref)
	var buf bytes.Buffer
	RenderReport(&buf, h.loc, rep)
	if err := os.WriteFile(h.cfg.ReportFile, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}

	h.logger.WithFields(logrus.Fields{
		"report": h.cfg.ReportFile,
		"data":   h.cfg.DataFile,
	}).Info("Session closed")

	fmt.Fprintf(h.out, h.loc.Messages.ReportWritten+"\n", h.cfg.ReportFile)
	return nil
}

// RenderReport writes a weekly report through the locale's templates. The
// shell uses it for the shutdown report file and the CLI for stdout.
func RenderReport(w io.Writer, loc *locale.Locale, rep service.Report) {
	fmt.Fprintf(w, loc.Messages.ReportTitle+"\n",
		timeutil.FormatDate(rep.From), timeutil.FormatDate(rep.To))
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, row := range rep.Rows {
		fmt.Fprintf(w, loc.Messages.ReportLine+"\n",
			row.Name, row.EmployeeID, timeutil.FormatHours(row.Hours))
	}
}
