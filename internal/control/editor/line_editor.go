// Package editor provides the single-line editor behind the location prompt.
package editor

import (
	"strconv"
	"sync"
)

// LineView allows inspection of a line editor, e.g. for drawing it.
type LineView interface {
	GetName() string
	GetContent() string
	GetCursorPos() int
}

// LineEditor edits a single line of text with a cursor.
// The cursor may sit one past the last rune, where new runes are appended.
type LineEditor struct {
	mtx sync.Mutex

	name      string
	content   []rune
	cursorPos int
}

// NewLineEditor returns an empty editor with the given prompt name.
func NewLineEditor(name string) *LineEditor {
	return &LineEditor{name: name}
}

// GetName returns the prompt name.
func (e *LineEditor) GetName() string { return e.name }

// GetContent returns the current content.
func (e *LineEditor) GetContent() string {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return string(e.content)
}

// GetCursorPos returns the cursor position in runes.
func (e *LineEditor) GetCursorPos() int {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.cursorPos
}

// AddRune inserts a printable rune at the cursor.
func (e *LineEditor) AddRune(r rune) {
	if !strconv.IsPrint(r) {
		return
	}
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.content = append(e.content[:e.cursorPos], append([]rune{r}, e.content[e.cursorPos:]...)...)
	e.cursorPos++
}

// BackspaceRune removes the rune before the cursor.
func (e *LineEditor) BackspaceRune() {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	if e.cursorPos == 0 {
		return
	}
	e.content = append(e.content[:e.cursorPos-1], e.content[e.cursorPos:]...)
	e.cursorPos--
}

// DeleteRune removes the rune under the cursor.
func (e *LineEditor) DeleteRune() {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	if e.cursorPos >= len(e.content) {
		return
	}
	e.content = append(e.content[:e.cursorPos], e.content[e.cursorPos+1:]...)
}

// BackspaceWord removes the word before the cursor along with the spaces
// following it.
func (e *LineEditor) BackspaceWord() {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	i := e.cursorPos
	for i > 0 && e.content[i-1] == ' ' {
		i--
	}
	for i > 0 && e.content[i-1] != ' ' {
		i--
	}
	e.content = append(e.content[:i], e.content[e.cursorPos:]...)
	e.cursorPos = i
}

// BackspaceToBeginning removes everything before the cursor.
func (e *LineEditor) BackspaceToBeginning() {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.content = append([]rune(nil), e.content[e.cursorPos:]...)
	e.cursorPos = 0
}

// MoveCursorLeft moves the cursor one rune left.
func (e *LineEditor) MoveCursorLeft() {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	if e.cursorPos > 0 {
		e.cursorPos--
	}
}

// MoveCursorRight moves the cursor one rune right, at most past the end.
func (e *LineEditor) MoveCursorRight() {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	if e.cursorPos < len(e.content) {
		e.cursorPos++
	}
}

// MoveCursorToBeginning moves the cursor to the first rune.
func (e *LineEditor) MoveCursorToBeginning() {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.cursorPos = 0
}

// MoveCursorPastEnd moves the cursor behind the last rune.
func (e *LineEditor) MoveCursorPastEnd() {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.cursorPos = len(e.content)
}

// Clear empties the editor.
func (e *LineEditor) Clear() {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.content = nil
	e.cursorPos = 0
}
