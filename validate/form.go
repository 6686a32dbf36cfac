package validate

import "strings"

// FormState is a snapshot of the annotation form.
type FormState struct {
	BodyPath         string // text of the body path input
	TableEmpty       bool   // extracted table shows its empty placeholder
	HasDiscardReason bool   // a discard reason is selected in the cascader
	Remark           string // remark textarea value
}

// FormReport lists which form warnings are active.
type FormReport struct {
	// RuleConflict: a discard reason is selected while the body path or table
	// has content, or the table has content while the body path is empty.
	RuleConflict bool
	// DiscardRequired: body path and table are both empty and no discard reason is selected.
	DiscardRequired bool
	// RemarkMustBeEmpty: the body path has content and the remark is not empty.
	RemarkMustBeEmpty bool
}

// Warning texts shown by the overlay.
const (
	MsgRuleConflict      = "规则冲突！选择丢弃原因时，输入框和表格必须为空；当输入框为空时，表格必须为空"
	MsgDiscardRequired   = "必须选择丢弃原因！"
	MsgRemarkMustBeEmpty = "备注必须为空！当输入框有内容时，备注必须为空"
)

// OK reports whether no warning is active.
func (r FormReport) OK() bool {
	return !r.RuleConflict && !r.DiscardRequired && !r.RemarkMustBeEmpty
}

// Warnings returns the active warning texts in display order.
func (r FormReport) Warnings() []string {
	var out []string
	if r.RuleConflict {
		out = append(out, MsgRuleConflict)
	}
	if r.DiscardRequired {
		out = append(out, MsgDiscardRequired)
	}
	if r.RemarkMustBeEmpty {
		out = append(out, MsgRemarkMustBeEmpty)
	}
	return out
}

// CheckForm evaluates the form rules. Text fields are trimmed before the emptiness test.
func CheckForm(s FormState) FormReport {
	bodyEmpty := strings.TrimSpace(s.BodyPath) == ""
	remarkEmpty := strings.TrimSpace(s.Remark) == ""

	discardWithContent := s.HasDiscardReason && (!bodyEmpty || !s.TableEmpty)
	tableWithoutBody := bodyEmpty && !s.TableEmpty

	return FormReport{
		RuleConflict:      discardWithContent || tableWithoutBody,
		DiscardRequired:   bodyEmpty && s.TableEmpty && !s.HasDiscardReason,
		RemarkMustBeEmpty: !bodyEmpty && !remarkEmpty,
	}
}

// Guard is the submit interception check: nil when the form is valid,
// otherwise a *FormError wrapping ErrSubmitBlocked.
func Guard(s FormState) error {
	rep := CheckForm(s)
	if rep.OK() {
		return nil
	}
	return &FormError{Report: rep}
}
