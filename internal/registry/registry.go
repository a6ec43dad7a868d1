// Package registry is the in-memory employee store. It is owned by the
// process for its whole lifetime: populated at startup by load and import,
// mutated by shell commands, serialized at shutdown. Commands run one at a
// time, so no locking is needed.
package registry

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"shiftbot/internal/models"
)

type Registry struct {
	employees map[string]*models.Employee
	order     []string
	logger    *logrus.Logger
}

func New() *Registry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Registry{
		employees: make(map[string]*models.Employee),
		logger:    logger,
	}
}

// Add registers a new employee with an empty schedule and shift log.
func (r *Registry) Add(id, name string) (*models.Employee, error) {
	if _, ok := r.employees[id]; ok {
		r.logger.WithField("employee_id", id).Warn("Employee already exists")
		return nil, fmt.Errorf("%w: %s", models.ErrDuplicateEmployee, id)
	}

	emp := models.NewEmployee(id, name)
	r.employees[id] = emp
	r.order = append(r.order, id)

	r.logger.WithFields(logrus.Fields{
		"employee_id": id,
		"name":        name,
	}).Info("Employee added")

	return emp, nil
}

// SetSchedule sets the recurring time range for one weekday, overwriting
// any existing entry. The range must contain the "-" separator; weekday
// name validation happens before this call, in the shell or importer.
func (r *Registry) SetSchedule(id string, day time.Weekday, timeRange string) (*models.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		r.logger.WithField("employee_id", id).Warn("Employee not found")
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownEmployee, id)
	}

	if !strings.Contains(timeRange, "-") {
		r.logger.WithFields(logrus.Fields{
			"employee_id": id,
			"time_range":  timeRange,
		}).Warn("Invalid schedule time range")
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidTimeRange, timeRange)
	}

	emp.Schedule[day] = timeRange

	r.logger.WithFields(logrus.Fields{
		"employee_id": id,
		"weekday":     day.String(),
		"time_range":  timeRange,
	}).Info("Weekly schedule set")

	return emp, nil
}

func (r *Registry) Get(id string) (*models.Employee, bool) {
	emp, ok := r.employees[id]
	return emp, ok
}

// List returns employees in first-registration order.
func (r *Registry) List() []*models.Employee {
	out := make([]*models.Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.employees[id])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}
