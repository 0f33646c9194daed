package menu

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Indexed pairs a visible item with its index in the frame's original order,
// which is what selection callbacks report to the host.
type Indexed struct {
	Index int
	Item  Item
}

// Visible returns the frame's items after applying its filter, preserving
// original order and indices.
func (f *Frame) Visible() []Indexed {
	all := make([]Indexed, len(f.Items))
	for i, item := range f.Items {
		all[i] = Indexed{Index: i, Item: item}
	}
	trimmed := strings.TrimSpace(f.Filter)
	if trimmed == "" {
		return all
	}

	labels := make([]string, len(f.Items))
	for i, item := range f.Items {
		labels[i] = item.Label
	}
	matches := make(map[int]struct{})
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, labels) {
		matches[rank.OriginalIndex] = struct{}{}
	}
	if len(matches) == 0 {
		lower := strings.ToLower(trimmed)
		for i, label := range labels {
			if strings.Contains(strings.ToLower(label), lower) {
				matches[i] = struct{}{}
			}
		}
	}

	filtered := make([]Indexed, 0, len(matches))
	for _, entry := range all {
		if _, ok := matches[entry.Index]; ok {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// SetFilter updates the filter query and keeps the cursor on a valid row.
func (f *Frame) SetFilter(query string) {
	f.Filter = query
	visible := f.Visible()
	if len(visible) == 0 {
		f.Cursor = 0
		return
	}
	if f.Cursor >= len(visible) {
		f.Cursor = len(visible) - 1
	}
	if visible[f.Cursor].Item.Disabled {
		f.Cursor = f.firstSelectable()
	}
}

// AppendFilter adds text to the filter.
func (f *Frame) AppendFilter(text string) {
	if text == "" {
		return
	}
	f.SetFilter(f.Filter + text)
}

// BackspaceFilter removes the last rune from the filter. Returns false when
// the filter was already empty.
func (f *Frame) BackspaceFilter() bool {
	runes := []rune(f.Filter)
	if len(runes) == 0 {
		return false
	}
	f.SetFilter(string(runes[:len(runes)-1]))
	return true
}

// ClearFilter drops the filter entirely.
func (f *Frame) ClearFilter() {
	f.SetFilter("")
}
