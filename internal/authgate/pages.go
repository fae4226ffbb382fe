package authgate

// Control ids shared by the list pages.
const (
	ControlDeleteSelected = "deleteSelectedButton"
	ControlDelete         = "deleteButton"
	ControlEdit           = "editButton"
	ControlAdd            = "addButton"
	ControlDatabaseMenu   = "databaseMenu"
	ControlImport         = "DBadd"
	ControlExport         = "DBout"
	ControlLogin          = "loginLink"
	ControlLogout         = "logoutMenuItem"
)

const (
	tooltipDatabase = "Для доступа к базе данных необходимо войти в систему"
	tooltipAction   = "Для выполнения действия необходимо войти в систему"
)

func common() []Control {
	return []Control{
		{ID: ControlDatabaseMenu, Kind: Protected, Tooltip: tooltipDatabase},
		{ID: ControlImport, Kind: Protected, Tooltip: tooltipAction},
		{ID: ControlExport, Kind: Protected, Tooltip: tooltipAction},
		{ID: ControlAdd, Kind: Protected, Tooltip: tooltipAction},
		{ID: ControlEdit, Kind: Protected, Tooltip: tooltipAction},
		{ID: ControlDelete, Kind: Protected, Tooltip: tooltipAction},
		{ID: ControlLogin, Kind: GuestOnly},
		{ID: ControlLogout, Kind: MemberOnly},
	}
}

// Page returns the gate of a list page whose bulk delete button carries
// deleteTooltip when disabled.
func Page(deleteTooltip string) *Gate {
	controls := append(common(), Control{ID: ControlDeleteSelected, Kind: Protected, Tooltip: deleteTooltip})
	return New(controls...)
}

var (
	// Header holds the controls shared by every page.
	Header = New(common()...)
	// Books is the gate of the catalog page.
	Books = Page("Для удаления выбранных книг необходимо войти в систему")
	// Authors is the gate of the authors page.
	Authors = Page("Для удаления выбранных авторов необходимо войти в систему")
	// Publishers is the gate of the publishing companies page.
	Publishers = Page("Для удаления выбранных издательств необходимо войти в систему")
)
