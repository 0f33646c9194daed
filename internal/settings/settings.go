package settings

import "math"

// Positions a toast stack can anchor to.
var Positions = []string{"top-right", "top-left", "bottom-right", "bottom-left"}

// Snapshot is the full set of user preferences at one point in time.
type Snapshot struct {
	DarkMode             bool
	Opacity              float64 // fraction in [0,1]
	FreeDrag             bool
	NotificationPosition string
}

// Defaults returns the out-of-the-box preference set.
func Defaults() Snapshot {
	return Snapshot{
		DarkMode:             true,
		Opacity:              0.95,
		FreeDrag:             false,
		NotificationPosition: "top-right",
	}
}

// Field identifies one editable row of the settings panel.
type Field int

const (
	FieldDarkMode Field = iota
	FieldOpacity
	FieldFreeDrag
	FieldNotificationPosition
	fieldCount
)

// FieldCount is the number of editable rows.
const FieldCount = int(fieldCount)

// Session is one open settings panel: the snapshot taken at open time plus
// the live working copy that previews apply to.
type Session struct {
	snap   Snapshot
	cur    Snapshot
	Cursor int
}

// Open starts a session from the current preferences.
func Open(cur Snapshot) *Session {
	return &Session{snap: cur, cur: cur}
}

// Current returns the working copy, which views render live.
func (s *Session) Current() Snapshot {
	return s.cur
}

// Dirty reports whether the working copy differs from the open snapshot.
func (s *Session) Dirty() bool {
	return s.cur != s.snap
}

// MoveCursor shifts the row highlight.
func (s *Session) MoveCursor(delta int) {
	next := s.Cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= FieldCount {
		next = FieldCount - 1
	}
	s.Cursor = next
}

// ToggleCurrent flips the boolean row under the cursor or cycles the
// position row. Returns the changed field, or -1 for the opacity row which
// only responds to AdjustOpacity.
func (s *Session) ToggleCurrent() Field {
	switch Field(s.Cursor) {
	case FieldDarkMode:
		s.cur.DarkMode = !s.cur.DarkMode
		return FieldDarkMode
	case FieldFreeDrag:
		s.cur.FreeDrag = !s.cur.FreeDrag
		return FieldFreeDrag
	case FieldNotificationPosition:
		s.cur.NotificationPosition = nextPosition(s.cur.NotificationPosition, 1)
		return FieldNotificationPosition
	default:
		return -1
	}
}

// AdjustCurrent applies a left/right step to the row under the cursor.
func (s *Session) AdjustCurrent(step int) Field {
	switch Field(s.Cursor) {
	case FieldOpacity:
		s.AdjustOpacity(step * 5)
		return FieldOpacity
	case FieldNotificationPosition:
		s.cur.NotificationPosition = nextPosition(s.cur.NotificationPosition, step)
		return FieldNotificationPosition
	case FieldDarkMode:
		s.cur.DarkMode = !s.cur.DarkMode
		return FieldDarkMode
	case FieldFreeDrag:
		s.cur.FreeDrag = !s.cur.FreeDrag
		return FieldFreeDrag
	default:
		return -1
	}
}

// AdjustOpacity shifts opacity by a whole-percent delta, clamped to [0,100].
func (s *Session) AdjustOpacity(percentDelta int) {
	p := FractionToPercent(s.cur.Opacity) + percentDelta
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	s.cur.Opacity = PercentToFraction(p)
}

// ChangedFields lists the fields whose working value differs from the
// open-time snapshot. Callers use it to emit only the callbacks that matter.
func (s *Session) ChangedFields() []Field {
	var fields []Field
	if s.cur.DarkMode != s.snap.DarkMode {
		fields = append(fields, FieldDarkMode)
	}
	if s.cur.Opacity != s.snap.Opacity {
		fields = append(fields, FieldOpacity)
	}
	if s.cur.FreeDrag != s.snap.FreeDrag {
		fields = append(fields, FieldFreeDrag)
	}
	if s.cur.NotificationPosition != s.snap.NotificationPosition {
		fields = append(fields, FieldNotificationPosition)
	}
	return fields
}

// Save returns the working copy as the new persisted state.
func (s *Session) Save() Snapshot {
	s.snap = s.cur
	return s.cur
}

// Cancel restores the open-time snapshot bit for bit and returns it.
func (s *Session) Cancel() Snapshot {
	s.cur = s.snap
	return s.cur
}

func nextPosition(cur string, step int) string {
	idx := 0
	for i, p := range Positions {
		if p == cur {
			idx = i
			break
		}
	}
	idx = (idx + step + len(Positions)) % len(Positions)
	return Positions[idx]
}

// PercentToFraction converts a whole percent to a fraction.
func PercentToFraction(p int) float64 {
	return float64(p) / 100
}

// FractionToPercent converts a fraction to the nearest whole percent. Every
// integer percent round-trips exactly.
func FractionToPercent(f float64) int {
	return int(math.Round(f * 100))
}
