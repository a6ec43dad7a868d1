package locale

// Portuguese mirrors the Portuguese presentation of the original tool.
var Portuguese = Locale{
	Name: "pt",

	CmdHelp:     "ajuda",
	CmdAdd:      "adicionar",
	CmdSchedule: "horário",
	CmdShift:    "turno",
	CmdHours:    "horas",
	CmdEdit:     "editar",
	CmdList:     "listar",
	CmdAuto:     "auto",
	CmdExit:     "sair",

	weekdayNames: [7]string{
		"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira",
		"Quinta-feira", "Sexta-feira", "Sábado",
	},

	Messages: Messages{
		Welcome:  "Bem-vindo ao ShiftBot - Gerenciador de Funcionários",
		TypeHelp: "Digite 'ajuda' para ver os comandos.",
		Help: `
Comandos:
- adicionar <nome> <id> : Adicionar um funcionário (ex.: adicionar "João Silva" E001)
- horário <id> <dia> <início-fim> : Definir horário semanal (ex.: horário E001 Segunda-feira 9:00-17:00)
- turno <id> <data> <início> <fim> : Registrar turno (ex.: turno E001 25-02-2025 9:00 17:00)
- horas <id> <data_início> <data_fim> : Mostrar horas totais (ex.: horas E001 20-02-2025 25-02-2025)
- editar <id> <data> <início> <fim> : Editar turno (ex.: editar E001 25-02-2025 9:30 17:00)
- listar : Mostrar todos os funcionários
- auto : Executar registro automático de turnos para hoje
- sair : Sair, salvar dados e gerar relatório
`,

		EmployeeAdded:    "Funcionário adicionado: %s (%s)",
		EmployeeExists:   "Erro: Funcionário %s já existe.",
		EmployeeNotFound: "Erro: Funcionário %s não encontrado.",

		ScheduleSet:      "Horário de %s definido para %s: %s",
		InvalidWeekday:   "Erro: Dia da semana inválido. Use Segunda-feira, Terça-feira, etc.",
		InvalidTimeRange: "Erro: Formato de horário deve ser início-fim (ex.: 9:00-17:00)",

		ShiftRecorded:       "Turno registrado para %s em %s: %s-%s (%s horas)",
		ShiftEdited:         "Turno atualizado para %s em %s: %s-%s (%s horas)",
		ShiftConflict:       "Conflito detectado: Turno existente em %s: %s-%s. Use 'editar' para alterar.",
		ShiftNotFound:       "Erro: Nenhum turno encontrado em %s. Use 'turno' para registrar.",
		InvalidTime:         "Erro: Formato de hora deve ser H:MM (ex.: 9:00).",
		NonPositiveDuration: "Erro: Horário de fim deve ser após o início.",
		FutureOrInvalidDate: "Erro: Data inválida ou posterior a hoje (%s).",

		TotalHours:       "Total de horas de %s de %s a %s: %s horas",
		InvalidDateRange: "Erro: Intervalo de datas inválido (use DD-MM-AAAA, até %s).",

		ListHeader: "Funcionários:",
		ListEntry:  "- %s (%s)",
		ListEmpty:  "Nenhum funcionário cadastrado.",

		AutoLogged:   "Turno automático registrado para %s em %s: %s-%s (%s horas)",
		AutoConflict: "Conflito detectado para %s em %s: Turno existente %s-%s. Use 'editar' para alterar.",
		AutoSkipped:  "Não foi possível registrar turno automático para %s em %s: horário inválido.",

		ImportedEmployee: "Funcionário importado: %s (%s)",
		ImportedSchedule: "Horário importado para %s: %s %s",
		ImportMissing:    "Arquivo %s não encontrado. Continuando sem importar.",

		ReportTitle:   "Relatório Semanal: %s a %s",
		ReportLine:    "%s (%s): %s horas",
		ReportWritten: "Relatório semanal gerado em %s",

		UnknownCommand: "Comando desconhecido. Digite 'ajuda' para ver os comandos.",
	},
}
