package schema

import (
	"testing"

	"custpipe/pkg/parser"
)

func table(headers []string, rows ...map[string]string) *parser.Table {
	return &parser.Table{Headers: headers, Records: rows}
}

func TestCleanCustomerInfo(t *testing.T) {
	in := table(
		[]string{"CustomerName", "ContactName", "ContactTypeName", "Textbox98"},
		map[string]string{
			"CustomerName":    " Smith, Jane ",
			"ContactName":     " Mary Major ",
			"ContactTypeName": "Referral",
			"Textbox98":       "555-1111",
		},
		map[string]string{
			"CustomerName":    "Acme Corp",
			"ContactName":     "",
			"ContactTypeName": "",
			"Textbox98":       "",
		},
	)
	contacts, err := CleanCustomerInfo(in)
	if err != nil {
		t.Fatalf("CleanCustomerInfo error: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	c := contacts[0]
	if c.CustFirst.String() != "Jane" || c.CustLast.String() != "Smith" {
		t.Fatalf("expected identity (Jane, Smith), got (%q, %q)", c.CustFirst.String(), c.CustLast.String())
	}
	if c.Name.String() != "Mary Major" {
		t.Fatalf("expected trimmed contact name, got %q", c.Name.String())
	}
	// Display name without a comma: first name silently Null.
	if !contacts[1].CustFirst.IsNull() || contacts[1].CustLast.String() != "Acme Corp" {
		t.Fatalf("expected (Null, Acme Corp), got (%v, %q)", contacts[1].CustFirst, contacts[1].CustLast.String())
	}
	if !contacts[1].Name.IsNull() {
		t.Fatal("expected empty contact name to be Null")
	}
}

func TestCleanCustomerInfo_MissingColumnIsFatal(t *testing.T) {
	in := table([]string{"CustomerName", "ContactName", "ContactTypeName"})
	if _, err := CleanCustomerInfo(in); err == nil {
		t.Fatal("expected error for missing Textbox98 column")
	}
}

func TestCleanTouchpoints(t *testing.T) {
	in := table(
		[]string{"custFirstName", "custLastName", "type", "dueDate"},
		map[string]string{
			"custFirstName": " Jane ",
			"custLastName":  "Smith",
			"type":          "followup",
			"dueDate":       "2024-01-05",
		},
	)
	touchpoints, err := CleanTouchpoints(in)
	if err != nil {
		t.Fatalf("CleanTouchpoints error: %v", err)
	}
	tp := touchpoints[0]
	if tp.CustFirst.String() != "Jane" || tp.CustLast.String() != "Smith" {
		t.Fatalf("unexpected identity (%q, %q)", tp.CustFirst.String(), tp.CustLast.String())
	}
	if tp.Type.String() != "followup" || tp.Due.String() != "2024-01-05" {
		t.Fatalf("unexpected touchpoint fields: %q %q", tp.Type.String(), tp.Due.String())
	}
}

func TestCleanSchedule(t *testing.T) {
	in := table(
		[]string{"Customer", "Employee", "Date", "End Time", "Status", "Position", "Location"},
		map[string]string{
			"Customer": "Smith, Jane",
			"Employee": "Doe, John",
			"Date":     "2024-01-10 09:00",
			"End Time": "2024-01-10 10:00",
			"Status":   "Completed",
			"Position": "Tech",
			"Location": "HQ",
		},
	)
	shifts, err := CleanSchedule(in)
	if err != nil {
		t.Fatalf("CleanSchedule error: %v", err)
	}
	s := shifts[0]
	if s.Date.String() != "2024-01-10" || s.StartTime.String() != "09:00" {
		t.Fatalf("expected Date split, got (%q, %q)", s.Date.String(), s.StartTime.String())
	}
	if s.CustFirst.String() != "Jane" || s.EmpLast.String() != "Doe" {
		t.Fatalf("unexpected identities: cust=%q emp=%q", s.CustFirst.String(), s.EmpLast.String())
	}
	if s.EndTime.String() != "2024-01-10 10:00" || s.Status.String() != "Completed" || s.Position.String() != "Tech" {
		t.Fatalf("unexpected optional fields: %q %q %q", s.EndTime.String(), s.Status.String(), s.Position.String())
	}
}

func TestCleanSchedule_MissingOptionalColumns(t *testing.T) {
	in := table(
		[]string{"Customer", "Employee", "Date"},
		map[string]string{
			"Customer": "Smith, Jane",
			"Employee": "Doe, John",
			"Date":     "2024-01-10 09:00",
		},
	)
	shifts, err := CleanSchedule(in)
	if err != nil {
		t.Fatalf("CleanSchedule error: %v", err)
	}
	s := shifts[0]
	if !s.EndTime.IsNull() || !s.Status.IsNull() || !s.Position.IsNull() {
		t.Fatalf("expected Null optional fields, got %v %v %v", s.EndTime, s.Status, s.Position)
	}
}

func TestCleanSchedule_MissingRequiredColumn(t *testing.T) {
	in := table([]string{"Customer", "Date"})
	if _, err := CleanSchedule(in); err == nil {
		t.Fatal("expected error for missing Employee column")
	}
}

func TestCleanEmployeeInfo(t *testing.T) {
	headers := []string{"emEmployeeId", "firstName", "lastName", "PhoneNumber", "StatusType", "EmployeePosition"}
	in := table(headers,
		map[string]string{
			"emEmployeeId": "E1", "firstName": " John ", "lastName": " Doe ",
			"PhoneNumber": "555-2222", "StatusType": "Active", "EmployeePosition": "Tech",
		},
		map[string]string{
			"emEmployeeId": "E1", "firstName": "John", "lastName": "Doe",
			"PhoneNumber": "555-9999", "StatusType": "Active", "EmployeePosition": "Tech",
		},
		map[string]string{
			"emEmployeeId": "E2", "firstName": "Sam", "lastName": "Lee",
			"PhoneNumber": "", "StatusType": "Inactive", "EmployeePosition": "Nurse",
		},
	)
	employees, err := CleanEmployeeInfo(in)
	if err != nil {
		t.Fatalf("CleanEmployeeInfo error: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected id-dedup to keep 2 employees, got %d", len(employees))
	}
	if employees[0].Phone.String() != "555-2222" {
		t.Fatalf("dedup must keep the first occurrence, got phone %q", employees[0].Phone.String())
	}
	if employees[0].Name.String() != "John Doe" {
		t.Fatalf("expected derived name John Doe, got %q", employees[0].Name.String())
	}
	if !employees[1].Phone.IsNull() {
		t.Fatal("expected empty phone to be Null")
	}
}
