package schema

// Contact is one cleaned row of the customer master export: a customer
// identity key plus one associated contact person.
type Contact struct {
	CustFirst Value
	CustLast  Value
	Name      Value
	Type      Value
	Phone     Value
}

// Touchpoint is one cleaned row of the touchpoint export. Its rows define
// the universe of customers that appear in the final output.
type Touchpoint struct {
	CustFirst Value
	CustLast  Value
	Type      Value
	Due       Value
}

// Shift is one cleaned row of the schedule export: a dated shift linking a
// customer identity to an employee identity.
type Shift struct {
	Date      Value
	StartTime Value
	EndTime   Value
	Status    Value
	Position  Value
	CustFirst Value
	CustLast  Value
	EmpFirst  Value
	EmpLast   Value
}

// Employee is one cleaned, id-deduplicated row of the employee master export.
type Employee struct {
	ID       Value
	Name     Value
	Phone    Value
	Status   Value
	Position Value
	First    Value
	Last     Value
}
