package view

var (
	PickerButtons = []Button{{"Enter", "Assign"}, {"↑/↓", "Select"}, {"Esc", "Cancel"}}

	ConfirmDeleteButtons = []Button{{"y/Enter", "Delete"}, {"n/Esc", "Keep"}}

	SummaryButtons = []Button{{"y", "Copy"}, {"e", "Copy iCal"}, {"t/Esc", "Close"}}

	HelpButtons = []Button{{"?/Esc", "Close"}}
)
