package fontfx

import (
	"time"
)

// TypingState is the phase of a TypingFont.
type TypingState int

const (
	TypingNotStarted TypingState = iota
	Typing
	TypingFinished
)

var typingStateNames = [...]string{"NotStarted", "Typing", "Finished"}

func (s TypingState) String() string {
	if s < 0 || int(s) >= len(typingStateNames) {
		return "TypingState(?)"
	}
	return typingStateNames[s]
}

// CharacterTyped is passed to TypingFont.OnCharacter before a character is
// appended. Setting Cancel skips the append; the same character is offered
// again after the next delay.
type CharacterTyped struct {
	Index  int
	Char   rune
	Cancel bool
}

// TypingFont reveals its text one character per Delay, like a typewriter.
// It has no shadow.
type TypingFont struct {
	Label
	stateNotifier

	// Delay is the time between characters.
	Delay time.Duration
	// OnCharacter, when set, runs before every character is appended.
	OnCharacter func(*CharacterTyped)

	source   []rune
	fullSize Vec2
	index    int
	elapsed  time.Duration
	state    TypingState
}

// NewTypingFont creates a typewriter for text. Nothing is shown until Start.
func NewTypingFont(font Font, text string, pos Vec2, tint Color, cfg TypingConfig) (*TypingFont, error) {
	if font == nil {
		return nil, ErrNilFont
	}
	t := &TypingFont{
		Label: Label{
			VisualState: NewVisualState(pos, tint),
			font:        font,
		},
		Delay:  cfg.Delay,
		source: []rune(text),
		index:  -1,
		state:  TypingNotStarted,
	}
	w, h := font.MeasureString(text)
	t.fullSize = Vec2{w, h}
	return t, nil
}

// State returns the current phase.
func (t *TypingFont) State() TypingState { return t.state }

// Source returns the full text being typed.
func (t *TypingFont) Source() string { return string(t.source) }

// Size returns the size of the full text times scale, so layout does not
// change while characters appear.
func (t *TypingFont) Size() Vec2 { return t.fullSize.Mul(t.Scale) }

// CenterOrigin pivots at the center of the full text.
func (t *TypingFont) CenterOrigin() error { return t.CenterOn(t.fullSize) }

// Start begins typing.
func (t *TypingFont) Start() { t.setState(Typing) }

// Finish shows the whole text at once and moves to TypingFinished.
func (t *TypingFont) Finish() {
	t.text = string(t.source)
	t.setState(TypingFinished)
}

// Reset clears the shown text and returns to TypingNotStarted; the next
// Start types from the first character.
func (t *TypingFont) Reset() {
	t.text = ""
	t.index = -1
	t.elapsed = 0
	t.setState(TypingNotStarted)
}

// Update advances the typewriter by dt while Typing.
func (t *TypingFont) Update(dt time.Duration) {
	if t.state != Typing {
		return
	}
	t.elapsed += dt
	if t.elapsed < t.Delay {
		return
	}
	t.elapsed = 0
	t.index++
	if t.index >= len(t.source) {
		t.setState(TypingFinished)
		return
	}
	c := t.source[t.index]
	if t.OnCharacter != nil {
		ev := &CharacterTyped{Index: t.index, Char: c}
		t.OnCharacter(ev)
		if ev.Cancel {
			t.index--
			return
		}
	}
	t.text += string(c)
}

func (t *TypingFont) setState(s TypingState) {
	t.state = s
	t.notify(t, KindTyping, s)
}
