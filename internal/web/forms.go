package web

import "fmt"

// Field is one text input of a form. Name doubles as the element id.
type Field struct {
	Name  string
	Label string
}

// Form describes one HTML form and the element its outcome is written to.
type Form struct {
	ID       string
	Title    string
	Submit   string
	ResultID string
	Fields   []Field
}

const (
	EntryForm  = "entryForm"
	TimeForm   = "timeForm"
	ExitForm   = "exitForm"
	CheckForm  = "checkForm"
	UpdateForm = "updateForm"
	CancelForm = "cancelForm"
)

// Forms is the page layout, in display order.
var Forms = []Form{
	{
		ID: EntryForm, Title: "Register entry", Submit: "Register", ResultID: "entryResult",
		Fields: []Field{{Name: "entryModel", Label: "Model"}, {Name: "entryPlate", Label: "Plate"}},
	},
	{
		ID: TimeForm, Title: "Stay time", Submit: "Query", ResultID: "timeResult",
		Fields: []Field{{Name: "timePlate", Label: "Plate"}},
	},
	{
		ID: ExitForm, Title: "Register exit", Submit: "Register", ResultID: "exitResult",
		Fields: []Field{{Name: "exitPlate", Label: "Plate"}},
	},
	{
		ID: CheckForm, Title: "Check presence", Submit: "Check", ResultID: "checkResult",
		Fields: []Field{{Name: "checkPlate", Label: "Plate"}},
	},
	{
		ID: UpdateForm, Title: "Update vehicle", Submit: "Update", ResultID: "updateResult",
		Fields: []Field{{Name: "updatePlate", Label: "Plate"}, {Name: "updateModel", Label: "New model"}},
	},
	{
		ID: CancelForm, Title: "Cancel registration", Submit: "Remove", ResultID: "cancelResult",
		Fields: []Field{{Name: "cancelPlate", Label: "Plate"}},
	},
}

func findForm(id string) (Form, bool) {
	for _, f := range Forms {
		if f.ID == id {
			return f, true
		}
	}
	return Form{}, false
}

// Result is the text written into a form's result element.
type Result struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func Success(format string, args ...interface{}) Result {
	return Result{Message: fmt.Sprintf(format, args...), Success: true}
}

func Failure(prefix string, err error) Result {
	return Result{Message: fmt.Sprintf("%s: %s", prefix, err.Error()), Success: false}
}
