package editor

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

func (m Modifier) Has(o Modifier) bool { return m&o == o }

// PointerEvent is a press, drag or release in screen pixels.
type PointerEvent struct {
	X, Y      int
	Button    Button
	Modifiers Modifier
}

// Key names the keys the editor reacts to.
type Key string

const (
	KeyDelete    Key = "Delete"
	KeyBackspace Key = "BackSpace"
	Key0         Key = "0"
	KeyEqual     Key = "="
	KeyPlus      Key = "+"
	KeyMinus     Key = "-"
	KeyZ         Key = "Z"
	KeyY         Key = "Y"
	KeyEscape    Key = "Escape"
)

type KeyEvent struct {
	Key       Key
	Modifiers Modifier
}

// ScrollEvent is a wheel or touchpad scroll at a screen position. Positive
// DY means the wheel moved away from the user.
type ScrollEvent struct {
	X, Y      int
	DX, DY    float64
	Modifiers Modifier
}

// isPanTrigger reports whether a press starts panning: a non-primary
// button, or the primary button with Ctrl+Shift held.
func isPanTrigger(ev PointerEvent) bool {
	return ev.Button == ButtonSecondary || ev.Button == ButtonTertiary ||
		ev.Modifiers.Has(ModControl|ModShift)
}
