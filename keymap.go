package annohelper

import (
	"fmt"
	"slices"
)

// Action is what a shortcut binding does on the host page.
type Action string

// Shortcut actions.
const (
	ActionDelete     Action = "delete"      // two-step: click delete, then confirm
	ActionMoveUp     Action = "move_up"     // click the row's "上移" link
	ActionMoveDown   Action = "move_down"   // click the row's "下移" link
	ActionClickIndex Action = "click_index" // click the Index-th small primary button
	ActionClickText  Action = "click_text"  // click the first button whose text equals Label
)

var knownActions = []Action{ActionDelete, ActionMoveUp, ActionMoveDown, ActionClickIndex, ActionClickText}

// ParseAction returns the Action named s or ErrUnknownAction.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !slices.Contains(knownActions, a) {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

// Binding maps a key combination to an Action.
// Key matches KeyboardEvent.key, Code matches KeyboardEvent.code; set one of them.
type Binding struct {
	Key         string `json:"key,omitempty" yaml:"key"`
	Code        string `json:"code,omitempty" yaml:"code"`
	Ctrl        bool   `json:"ctrl,omitempty" yaml:"ctrl"`
	Shift       bool   `json:"shift,omitempty" yaml:"shift"`
	Alt         bool   `json:"alt,omitempty" yaml:"alt"`
	Meta        bool   `json:"meta,omitempty" yaml:"meta"`
	Action      Action `json:"action" yaml:"action"`
	Label       string `json:"label,omitempty" yaml:"label"` // button text for ActionClickText
	Index       int    `json:"index,omitempty" yaml:"index"` // button index for ActionClickIndex
	Description string `json:"description,omitempty" yaml:"description"`
	// Hint is the key shown in the help panel; defaults to Key or Code.
	Hint string `json:"hint,omitempty" yaml:"hint"`
}

// DisplayKey returns the text shown for the binding in the help panel.
func (b Binding) DisplayKey() string {
	if b.Hint != "" {
		return b.Hint
	}
	if b.Key != "" {
		return b.Key
	}
	return b.Code
}

// DefaultKeymap returns the bindings of the annotation page.
func DefaultKeymap() []Binding {
	return []Binding{
		{Code: "Digit1", Action: ActionClickIndex, Index: 0, Hint: "1", Description: "Body添加"},
		{Code: "Digit2", Action: ActionClickIndex, Index: 1, Hint: "2", Description: "Prune添加"},
		{Code: "Digit3", Action: ActionClickText, Label: "提取内容", Hint: "3", Description: "提取内容"},
		{Code: "Tab", Action: ActionClickText, Label: "跳到父节点", Hint: "Tab", Description: "跳到父节点"},
		{Code: "Backquote", Action: ActionClickText, Label: "回 退", Hint: "~", Description: "回退操作"},
		{Key: "Delete", Action: ActionDelete, Hint: "Del×2", Description: "删除当前行（二次确认）"},
		{Key: "ArrowUp", Action: ActionMoveUp, Hint: "↑", Description: "上移当前行"},
		{Key: "ArrowDown", Action: ActionMoveDown, Hint: "↓", Description: "下移当前行"},
		{Key: "s", Ctrl: true, Action: ActionClickText, Label: "暂 存", Hint: "Ctrl+S", Description: "保存当前进度"},
	}
}

// DefaultAllowedTags returns the tag values accepted by the tag validator.
// The empty string covers rows without a tag.
func DefaultAllowedTags() []string {
	return []string{"标题", "发布时间", ""}
}

func validateBinding(i int, b Binding) error {
	if _, err := ParseAction(string(b.Action)); err != nil {
		return fmt.Errorf("%w: binding %d: %w", ErrInvalidManifest, i, err)
	}
	if b.Key == "" && b.Code == "" {
		return fmt.Errorf("%w: binding %d: key or code required", ErrInvalidManifest, i)
	}
	if b.Action == ActionClickText && b.Label == "" {
		return fmt.Errorf("%w: binding %d: click_text needs a label", ErrInvalidManifest, i)
	}
	if b.Index < 0 {
		return fmt.Errorf("%w: binding %d: negative index", ErrInvalidManifest, i)
	}
	return nil
}
