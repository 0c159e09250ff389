package report

import (
	"strings"

	"custpipe/pkg/engine"
	"custpipe/pkg/schema"
)

// ContactBlock is one relevant contact person inside a customer document.
type ContactBlock struct {
	Name  schema.Value `json:"name"`
	Type  schema.Value `json:"type"`
	Phone schema.Value `json:"phone"`
}

// ShiftBlock is one scheduled shift inside an employee block. Start and end
// times are normalized "YYYY-MM-DDTHH:MM:SS" stamps, or null when the source
// cells were unparseable.
type ShiftBlock struct {
	Position  schema.Value `json:"position"`
	Status    schema.Value `json:"status"`
	StartTime schema.Value `json:"startTime"`
	EndTime   schema.Value `json:"endTime"`
}

// EmployeeBlock groups the shifts of one (name, phone) employee identity.
type EmployeeBlock struct {
	Name   schema.Value `json:"name"`
	Phone  schema.Value `json:"phone"`
	Shifts []ShiftBlock `json:"shifts"`
}

// CustomerDocument is the final nested per-customer record. Field order here
// fixes the key order of the serialized object.
type CustomerDocument struct {
	Name      schema.Value    `json:"name"`
	Type      schema.Value    `json:"type"`
	DueDate   schema.Value    `json:"dueDate"`
	Contacts  []ContactBlock  `json:"contacts"`
	Employees []EmployeeBlock `json:"employees"`
}

// acceptedContactTypes is the case-insensitive set of contact types that are
// relevant for the output.
var acceptedContactTypes = map[string]bool{
	"responsible contact": true,
	"referral":            true,
}

// BuildDocuments partitions the deduplicated wide table by customer name and
// assembles one nested document per partition. Partitions appear in
// first-seen row order; a Null customer name forms its own partition rather
// than being discarded. Within a partition the first row alone supplies the
// touchpoint type and due date.
func BuildDocuments(rows []engine.WideRow) []CustomerDocument {
	order := make([]string, 0)
	groups := make(map[string][]engine.WideRow)
	for _, row := range rows {
		key := row.CustomerName.Key()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}

	docs := make([]CustomerDocument, 0, len(order))
	for _, key := range order {
		group := groups[key]
		first := group[0]
		docs = append(docs, CustomerDocument{
			Name:      first.CustomerName,
			Type:      first.TouchpointType,
			DueDate:   first.TouchpointDue,
			Contacts:  buildContacts(group),
			Employees: buildEmployees(group),
		})
	}
	return docs
}

// buildContacts projects the group onto (name, type, phone): rows with a
// Null contact name are dropped, only accepted contact types survive, and
// exact tuples are deduplicated keeping the first occurrence.
func buildContacts(group []engine.WideRow) []ContactBlock {
	contacts := make([]ContactBlock, 0)
	seen := make(map[string]bool)
	for _, row := range group {
		if row.ContactName.IsNull() {
			continue
		}
		typeText, ok := row.ContactType.AsText()
		if !ok || !acceptedContactTypes[strings.ToLower(typeText)] {
			continue
		}
		key := row.ContactName.Key() + "\x1f" + row.ContactType.Key() + "\x1f" + row.ContactPhone.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		contacts = append(contacts, ContactBlock{
			Name:  row.ContactName,
			Type:  row.ContactType,
			Phone: row.ContactPhone,
		})
	}
	return contacts
}

// buildEmployees sub-partitions the group by (employee name, phone) in
// first-seen order, skipping unassigned rows (Null employee name). Shifts
// keep the sub-partition's row order; no shift dedup or time sort happens.
func buildEmployees(group []engine.WideRow) []EmployeeBlock {
	order := make([]string, 0)
	subgroups := make(map[string][]engine.WideRow)
	for _, row := range group {
		if row.EmployeeName.IsNull() {
			continue
		}
		key := row.EmployeeName.Key() + "\x1f" + row.EmployeePhone.Key()
		if _, ok := subgroups[key]; !ok {
			order = append(order, key)
		}
		subgroups[key] = append(subgroups[key], row)
	}

	employees := make([]EmployeeBlock, 0, len(order))
	for _, key := range order {
		sub := subgroups[key]
		shifts := make([]ShiftBlock, 0, len(sub))
		for _, row := range sub {
			// The emitted position is the employee master's, not the schedule
			// row's; the schedule Position travels on the wide row but is not
			// part of the output shape.
			shifts = append(shifts, ShiftBlock{
				Position:  row.EmployeePosition,
				Status:    row.ScheduleStatus,
				StartTime: schema.Timestamp(row.Date, row.StartTime),
				EndTime:   schema.Timestamp(row.EndTime, schema.Value{}),
			})
		}
		employees = append(employees, EmployeeBlock{
			Name:   sub[0].EmployeeName,
			Phone:  sub[0].EmployeePhone,
			Shifts: shifts,
		})
	}
	return employees
}
