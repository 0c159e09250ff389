package engine

import (
	"strings"

	"custpipe/pkg/schema"
)

// WideRow is one fully joined, pre-grouping record: a touchpoint row carrying
// its matched customer contact and schedule/employee fields. Unmatched sides
// hold Null values.
type WideRow struct {
	CustFirst schema.Value
	CustLast  schema.Value

	// CustomerName is the derived "First Last" grouping key; Null when either
	// identity part is Null.
	CustomerName schema.Value

	TouchpointType schema.Value
	TouchpointDue  schema.Value

	ContactName  schema.Value
	ContactType  schema.Value
	ContactPhone schema.Value

	Date             schema.Value
	StartTime        schema.Value
	EndTime          schema.Value
	ScheduleStatus   schema.Value
	SchedulePosition schema.Value

	EmployeeID       schema.Value
	EmployeeName     schema.Value
	EmployeePhone    schema.Value
	EmployeeStatus   schema.Value
	EmployeePosition schema.Value
}

// ScheduleAssignment pairs one schedule row with its matched employee, or
// with nil on a left-join miss.
type ScheduleAssignment struct {
	shift    schema.Shift
	employee *schema.Employee
}

// nameKey builds the join key for a (first, last) identity pair. ok is false
// when either part is Null: a null identity key never matches anything.
func nameKey(first, last schema.Value) (string, bool) {
	if first.IsNull() || last.IsNull() {
		return "", false
	}
	return first.Key() + "\x1f" + last.Key(), true
}

// JoinScheduleEmployees left-joins the schedule onto the employee master on
// the employee identity key. Every schedule row is retained; a row matching
// N employees fans out into N assignments, a row matching none keeps a nil
// employee.
func JoinScheduleEmployees(shifts []schema.Shift, employees []schema.Employee) []ScheduleAssignment {
	byName := make(map[string][]int, len(employees))
	for i, emp := range employees {
		if key, ok := nameKey(emp.First, emp.Last); ok {
			byName[key] = append(byName[key], i)
		}
	}

	assignments := make([]ScheduleAssignment, 0, len(shifts))
	for _, shift := range shifts {
		key, ok := nameKey(shift.EmpFirst, shift.EmpLast)
		if !ok {
			assignments = append(assignments, ScheduleAssignment{shift: shift})
			continue
		}
		matches := byName[key]
		if len(matches) == 0 {
			assignments = append(assignments, ScheduleAssignment{shift: shift})
			continue
		}
		for _, i := range matches {
			assignments = append(assignments, ScheduleAssignment{shift: shift, employee: &employees[i]})
		}
	}
	return assignments
}

// BuildWideRows anchors on the touchpoint table and left-joins customer
// contacts and schedule assignments on the customer identity key. A
// touchpoint with no match on a side appears once with Null fields for that
// side; N contact matches times M schedule matches fan out into N*M rows.
func BuildWideRows(
	touchpoints []schema.Touchpoint,
	contacts []schema.Contact,
	assignments []ScheduleAssignment,
) []WideRow {
	contactsByCust := make(map[string][]int, len(contacts))
	for i, c := range contacts {
		if key, ok := nameKey(c.CustFirst, c.CustLast); ok {
			contactsByCust[key] = append(contactsByCust[key], i)
		}
	}
	assignmentsByCust := make(map[string][]int, len(assignments))
	for i, a := range assignments {
		if key, ok := nameKey(a.shift.CustFirst, a.shift.CustLast); ok {
			assignmentsByCust[key] = append(assignmentsByCust[key], i)
		}
	}

	var rows []WideRow
	for _, tp := range touchpoints {
		var contactMatches, scheduleMatches []int
		if key, ok := nameKey(tp.CustFirst, tp.CustLast); ok {
			contactMatches = contactsByCust[key]
			scheduleMatches = assignmentsByCust[key]
		}

		base := WideRow{
			CustFirst:      tp.CustFirst,
			CustLast:       tp.CustLast,
			CustomerName:   schema.JoinNames(tp.CustFirst, tp.CustLast),
			TouchpointType: tp.Type,
			TouchpointDue:  tp.Due,
		}

		// Fan out contact misses and schedule misses as a single Null "match"
		// so the touchpoint row is never dropped.
		contactFan := contactMatches
		if len(contactFan) == 0 {
			contactFan = []int{-1}
		}
		scheduleFan := scheduleMatches
		if len(scheduleFan) == 0 {
			scheduleFan = []int{-1}
		}

		for _, ci := range contactFan {
			row := base
			if ci >= 0 {
				c := contacts[ci]
				row.ContactName = c.Name
				row.ContactType = c.Type
				row.ContactPhone = c.Phone
			}
			for _, si := range scheduleFan {
				wide := row
				if si >= 0 {
					a := assignments[si]
					wide.Date = a.shift.Date
					wide.StartTime = a.shift.StartTime
					wide.EndTime = a.shift.EndTime
					wide.ScheduleStatus = a.shift.Status
					wide.SchedulePosition = a.shift.Position
					if a.employee != nil {
						wide.EmployeeID = a.employee.ID
						wide.EmployeeName = a.employee.Name
						wide.EmployeePhone = a.employee.Phone
						wide.EmployeeStatus = a.employee.Status
						wide.EmployeePosition = a.employee.Position
					}
				}
				rows = append(rows, wide)
			}
		}
	}
	return rows
}

// Dedup collapses wide rows that are identical across the fields that matter
// for the output shape, keeping the first occurrence. Rows differing only in
// other columns (a stray contact duplicate, say) still collapse.
func Dedup(rows []WideRow) []WideRow {
	seen := make(map[string]bool, len(rows))
	out := make([]WideRow, 0, len(rows))
	for _, row := range rows {
		key := dedupKey(row)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out
}

// dedupKey encodes the 8-field identity tuple of a wide row. Null cells
// encode to a distinct token, so two Null cells compare equal here.
func dedupKey(row WideRow) string {
	parts := []string{
		row.CustomerName.Key(),
		row.EmployeeName.Key(),
		row.EmployeePhone.Key(),
		row.Date.Key(),
		row.StartTime.Key(),
		row.EndTime.Key(),
		row.ScheduleStatus.Key(),
		row.EmployeePosition.Key(),
	}
	return strings.Join(parts, "\x1f")
}
