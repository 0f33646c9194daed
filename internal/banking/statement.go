package banking

import "sort"

// SortMode orders statement rows.
type SortMode int

const (
	SortDateDesc SortMode = iota
	SortDateAsc
	SortAmountDesc
	SortAmountAsc
	sortModeCount
)

func (m SortMode) Label() string {
	switch m {
	case SortDateAsc:
		return "date ↑"
	case SortAmountDesc:
		return "amount ↓"
	case SortAmountAsc:
		return "amount ↑"
	default:
		return "date ↓"
	}
}

// TypeFilters cycles through "" (all) and each transaction type.
var TypeFilters = []string{"", "deposit", "withdraw", "transfer"}

// Statement is the filtered, sorted ledger view.
type Statement struct {
	filterIdx int
	Sort      SortMode
	Offset    int
}

// Filter returns the active type filter, empty meaning all.
func (s *Statement) Filter() string {
	return TypeFilters[s.filterIdx]
}

// CycleFilter advances to the next type filter and resets scrolling.
func (s *Statement) CycleFilter() {
	s.filterIdx = (s.filterIdx + 1) % len(TypeFilters)
	s.Offset = 0
}

// CycleSort advances to the next sort mode and resets scrolling.
func (s *Statement) CycleSort() {
	s.Sort = (s.Sort + 1) % sortModeCount
	s.Offset = 0
}

// Rows applies the filter and sort to the ledger. The input is not mutated.
func (s *Statement) Rows(all []Transaction) []Transaction {
	filter := s.Filter()
	rows := make([]Transaction, 0, len(all))
	for _, t := range all {
		if filter == "" || t.Type == filter {
			rows = append(rows, t)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		switch s.Sort {
		case SortDateAsc:
			return rows[i].When.Before(rows[j].When)
		case SortAmountDesc:
			return rows[i].Amount > rows[j].Amount
		case SortAmountAsc:
			return rows[i].Amount < rows[j].Amount
		default:
			return rows[i].When.After(rows[j].When)
		}
	})
	return rows
}

// Scroll moves the viewport offset, clamped to the row count.
func (s *Statement) Scroll(delta, rowCount, visible int) {
	max := rowCount - visible
	if max < 0 {
		max = 0
	}
	s.Offset += delta
	if s.Offset < 0 {
		s.Offset = 0
	}
	if s.Offset > max {
		s.Offset = max
	}
}
