package report

import (
	"os"
	"path/filepath"
	"testing"

	"custpipe/pkg/engine"
	"custpipe/pkg/schema"
)

func TestEncode_EmptyCollection(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %s", data)
	}
}

func TestEncode_KeyOrderAndIndent(t *testing.T) {
	docs := []CustomerDocument{{
		Name:    schema.Text("Jane Smith"),
		Type:    schema.Text("followup"),
		DueDate: schema.Text("2024-01-05"),
		Contacts: []ContactBlock{{
			Name:  schema.Text("Mary Major"),
			Type:  schema.Text("Referral"),
			Phone: schema.Text("555-1111"),
		}},
		Employees: []EmployeeBlock{{
			Name:  schema.Text("John Doe"),
			Phone: schema.Value{},
			Shifts: []ShiftBlock{{
				Position:  schema.Text("Tech"),
				Status:    schema.Text("Completed"),
				StartTime: schema.Text("2024-01-10T09:00:00"),
				EndTime:   schema.Value{},
			}},
		}},
	}}

	want := `[
  {
    "name": "Jane Smith",
    "type": "followup",
    "dueDate": "2024-01-05",
    "contacts": [
      {
        "name": "Mary Major",
        "type": "Referral",
        "phone": "555-1111"
      }
    ],
    "employees": [
      {
        "name": "John Doe",
        "phone": null,
        "shifts": [
          {
            "position": "Tech",
            "status": "Completed",
            "startTime": "2024-01-10T09:00:00",
            "endTime": null
          }
        ]
      }
    ]
  }
]`

	data, err := Encode(docs)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if string(data) != want {
		t.Fatalf("unexpected encoding:\n%s\nwant:\n%s", data, want)
	}
}

func TestEncode_EmptyListsNotNull(t *testing.T) {
	// A fully Null wide row produces a document whose lists are empty, and
	// empty lists must encode as [] rather than null.
	docs := BuildDocuments([]engine.WideRow{{}})
	data, err := Encode(docs)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := `[
  {
    "name": null,
    "type": null,
    "dueDate": null,
    "contacts": [],
    "employees": []
  }
]`
	if string(data) != want {
		t.Fatalf("unexpected encoding:\n%s", data)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFile(path, nil); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected [], got %s", data)
	}
}
