package shortcut

// Direction labels of the row move links.
const (
	LabelMoveUp   = "上移"
	LabelMoveDown = "下移"
)

// PrimarySmallButton is the selector of the buttons addressed by click_index bindings.
const PrimarySmallButton = ".ant-btn-primary.ant-btn-sm"

// Host performs page-side lookups and clicks. Methods return false when the
// element they need is absent.
type Host interface {
	// TargetRow returns the row a row action applies to: the hovered row,
	// else the selected row, else the first row tagged "标签".
	TargetRow() (row string, ok bool)
	Highlight(row string)
	// HasDeleteLink reports whether the row carries a "删除" link.
	// Both delete steps require it.
	HasDeleteLink(row string) bool
	// ClickDelete clicks the row's "删除" link.
	ClickDelete(row string) bool
	// ConfirmDelete clicks the primary button of the open delete confirmation.
	ConfirmDelete() bool
	// ClickMove clicks the row link whose text is label (LabelMoveUp or LabelMoveDown).
	ClickMove(row, label string) bool
	ClickButtonIndex(selector string, index int) bool
	ClickButtonText(label string) bool
}
