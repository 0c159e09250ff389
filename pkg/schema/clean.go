package schema

import (
	"github.com/rotisserie/eris"

	"custpipe/pkg/parser"
)

// ReportMetadataLines is how many metadata lines report-style exports
// (customer and employee master) carry above the real header row.
const ReportMetadataLines = 3

// requireColumns aborts cleaning when a structurally required column is
// absent. Per-cell problems never reach this path; a missing column means
// the export itself is malformed.
func requireColumns(source string, t *parser.Table, cols ...string) error {
	for _, col := range cols {
		if !t.Has(col) {
			return eris.Errorf("%s: missing required column %q", source, col)
		}
	}
	return nil
}

// CleanCustomerInfo normalizes the customer master export. The combined
// "Last, First" display name is split into the customer identity key; a
// display name without a comma silently yields a Null first name.
func CleanCustomerInfo(t *parser.Table) ([]Contact, error) {
	if err := requireColumns("customer_info", t,
		"CustomerName", "ContactName", "ContactTypeName", "Textbox98"); err != nil {
		return nil, err
	}
	contacts := make([]Contact, 0, len(t.Records))
	for _, rec := range t.Records {
		last, first := SplitName(FromCell(rec["CustomerName"]))
		contacts = append(contacts, Contact{
			CustFirst: first,
			CustLast:  last,
			Name:      FromCell(rec["ContactName"]),
			Type:      FromCell(rec["ContactTypeName"]),
			Phone:     FromCell(rec["Textbox98"]),
		})
	}
	return contacts, nil
}

// CleanTouchpoints normalizes the touchpoint export. Its rows are the
// driving table of the pipeline: every distinct customer here produces
// exactly one output document.
func CleanTouchpoints(t *parser.Table) ([]Touchpoint, error) {
	if err := requireColumns("touchpoints", t,
		"custFirstName", "custLastName", "type", "dueDate"); err != nil {
		return nil, err
	}
	touchpoints := make([]Touchpoint, 0, len(t.Records))
	for _, rec := range t.Records {
		touchpoints = append(touchpoints, Touchpoint{
			CustFirst: FromCell(rec["custFirstName"]),
			CustLast:  FromCell(rec["custLastName"]),
			Type:      FromCell(rec["type"]),
			Due:       FromCell(rec["dueDate"]),
		})
	}
	return touchpoints, nil
}

// CleanSchedule normalizes the schedule export. Customer and Employee are
// combined "Last, First" display names; Date may embed both the calendar
// date and the shift start time. End Time, Status and Position are optional
// columns — when absent every row carries Null there instead of failing.
func CleanSchedule(t *parser.Table) ([]Shift, error) {
	if err := requireColumns("schedule", t, "Customer", "Employee", "Date"); err != nil {
		return nil, err
	}
	optional := func(rec map[string]string, col string) Value {
		if !t.Has(col) {
			return Value{}
		}
		return FromCell(rec[col])
	}
	shifts := make([]Shift, 0, len(t.Records))
	for _, rec := range t.Records {
		custLast, custFirst := SplitName(FromCell(rec["Customer"]))
		empLast, empFirst := SplitName(FromCell(rec["Employee"]))
		date, start := SplitDateTime(FromCell(rec["Date"]))
		shifts = append(shifts, Shift{
			Date:      date,
			StartTime: start,
			EndTime:   optional(rec, "End Time"),
			Status:    optional(rec, "Status"),
			Position:  optional(rec, "Position"),
			CustFirst: custFirst,
			CustLast:  custLast,
			EmpFirst:  empFirst,
			EmpLast:   empLast,
		})
	}
	return shifts, nil
}

// CleanEmployeeInfo normalizes the employee master export: rows are
// deduplicated on the employee id (first occurrence wins) and a "First Last"
// display name is derived from the trimmed name parts.
func CleanEmployeeInfo(t *parser.Table) ([]Employee, error) {
	if err := requireColumns("employee_info", t,
		"emEmployeeId", "firstName", "lastName", "PhoneNumber", "StatusType", "EmployeePosition"); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(t.Records))
	employees := make([]Employee, 0, len(t.Records))
	for _, rec := range t.Records {
		id := FromCell(rec["emEmployeeId"])
		if seen[id.Key()] {
			continue
		}
		seen[id.Key()] = true

		first := FromCell(rec["firstName"])
		last := FromCell(rec["lastName"])
		employees = append(employees, Employee{
			ID:       id,
			Name:     JoinNames(first, last),
			Phone:    FromCell(rec["PhoneNumber"]),
			Status:   FromCell(rec["StatusType"]),
			Position: FromCell(rec["EmployeePosition"]),
			First:    first,
			Last:     last,
		})
	}
	return employees, nil
}
