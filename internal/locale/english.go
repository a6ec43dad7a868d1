package locale

// English mirrors the English presentation of the original tool.
var English = Locale{
	Name: "en",

	CmdHelp:     "help",
	CmdAdd:      "add",
	CmdSchedule: "schedule",
	CmdShift:    "shift",
	CmdHours:    "hours",
	CmdEdit:     "edit",
	CmdList:     "list",
	CmdAuto:     "auto",
	CmdExit:     "exit",

	weekdayNames: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},

	Messages: Messages{
		Welcome:  "Welcome to ShiftBot - Employee Manager",
		TypeHelp: "Type 'help' to see available commands.",
		Help: `
Commands:
- add <name> <id> : Add an employee (e.g.: add "John Smith" E001)
- schedule <id> <day> <start-end> : Set weekly schedule (e.g.: schedule E001 Monday 9:00-17:00)
- shift <id> <date> <start> <end> : Register shift (e.g.: shift E001 25-02-2025 9:00 17:00)
- hours <id> <start_date> <end_date> : Show total hours (e.g.: hours E001 20-02-2025 25-02-2025)
- edit <id> <date> <start> <end> : Edit shift (e.g.: edit E001 25-02-2025 9:30 17:00)
- list : Show all employees
- auto : Run automatic shift logging for today
- exit : Exit, save data and generate report
`,

		EmployeeAdded:    "Employee added: %s (%s)",
		EmployeeExists:   "Error: Employee %s already exists.",
		EmployeeNotFound: "Error: Employee %s not found.",

		ScheduleSet:      "Schedule for %s set for %s: %s",
		InvalidWeekday:   "Error: Invalid day. Use Monday, Tuesday, etc.",
		InvalidTimeRange: "Error: Time format must be start-end (e.g.: 9:00-17:00)",

		ShiftRecorded:       "Shift logged for %s on %s: %s-%s (%s hours)",
		ShiftEdited:         "Shift updated for %s on %s: %s-%s (%s hours)",
		ShiftConflict:       "Conflict: Existing shift on %s: %s-%s. Use 'edit' to modify.",
		ShiftNotFound:       "Error: No shift found on %s. Use 'shift' to register.",
		InvalidTime:         "Error: Time format must be H:MM (e.g.: 9:00).",
		NonPositiveDuration: "Error: End time must be after start time.",
		FutureOrInvalidDate: "Error: Invalid or future date (%s is the limit).",

		TotalHours:       "Total hours for %s from %s to %s: %s hours",
		InvalidDateRange: "Error: Invalid date range (use DD-MM-YYYY, up to %s).",

		ListHeader: "Employees:",
		ListEntry:  "- %s (%s)",
		ListEmpty:  "No employees registered.",

		AutoLogged:   "Automatic shift logged for %s on %s: %s-%s (%s hours)",
		AutoConflict: "Conflict detected for %s on %s: Existing shift %s-%s. Use 'edit' to modify.",
		AutoSkipped:  "Could not auto-log shift for %s on %s: invalid schedule entry.",

		ImportedEmployee: "Employee imported: %s (%s)",
		ImportedSchedule: "Schedule imported for %s: %s %s",
		ImportMissing:    "File %s not found. Continuing without importing.",

		ReportTitle:   "Weekly Report: %s to %s",
		ReportLine:    "%s (%s): %s hours",
		ReportWritten: "Weekly report generated in %s",

		UnknownCommand: "Unknown command. Type 'help' to see available commands.",
	},
}
