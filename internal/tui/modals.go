package tui

import "github.com/javiermolinar/classgrid/internal/tui/view"

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalPicker:
		return m.renderPickerModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	case ModalSummary:
		return m.renderSummaryModal()
	case ModalHelp:
		return m.renderHelpModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		Header:       m.styles.ModalHeaderStyle,
		Title:        m.styles.ModalTitleStyle,
		Footer:       m.styles.ModalFooterStyle,
		Box:          m.styles.ModalStyle,
		Button:       m.styles.ModalButtonStyle,
		ButtonActive: m.styles.ModalButtonActiveStyle,
		Body:         m.styles.ModalBodyStyle,
	}
}

func (m Model) renderPickerModal() string {
	vm := m.pickerModalViewModel()
	body := view.RenderPickerBody(vm.Model, vm.Styles)
	return view.RenderFrame(view.Frame{Title: vm.Title, Body: body, Buttons: view.PickerButtons}, m.modalStyles())
}

func (m Model) renderConfirmDeleteModal() string {
	vm, ok := m.confirmDeleteModalViewModel()
	if !ok {
		return ""
	}
	body := view.RenderConfirmDeleteBody(vm.Model, vm.Styles)
	return view.RenderFrame(view.Frame{Title: "Delete event", Body: body, Buttons: view.ConfirmDeleteButtons}, m.modalStyles())
}

func (m Model) renderSummaryModal() string {
	body := view.RenderTable(m.summaryTableViewState())
	return view.RenderFrame(view.Frame{Title: "Schedule summary", Body: body, Buttons: view.SummaryButtons}, m.modalStyles())
}

func (m Model) renderHelpModal() string {
	body := view.RenderHelpBody(helpEntries, m.styles.ModalLabelStyle.UnsetWidth(), m.styles.ModalBodyStyle)
	return view.RenderFrame(view.Frame{Title: "Keys", Body: body, Buttons: view.HelpButtons}, m.modalStyles())
}
