/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"fmt"
	"strings"
)

// maxLogLines is how many lines the message log keeps before dropping the
// oldest.
const maxLogLines = 256

// Logger is the scrollable message log shown below the CHIP-8 screen.
type Logger struct {
	lines []string

	// rows is how many lines are visible at once.
	rows int

	// back is how many lines the view is scrolled up from the newest text.
	// Zero follows new output.
	back int
}

// NewLog creates a message log showing rows lines at a time.
func NewLog(rows int) *Logger {
	return &Logger{
		lines: make([]string, 0, maxLogLines),
		rows:  rows,
	}
}

// Log outputs a new line to the log.
func (l *Logger) Log(s ...string) {
	l.append(strings.Join(s, " "))
}

// Logf outputs a formatted line to the log.
func (l *Logger) Logf(format string, args ...interface{}) {
	l.append(fmt.Sprintf(format, args...))
}

// Logln outputs a new line to the log, with an empty line prefixed.
func (l *Logger) Logln(s ...string) {
	l.append("", strings.Join(s, " "))
}

func (l *Logger) append(text ...string) {
	l.lines = append(l.lines, text...)

	// a scrolled back view stays on the same text
	if l.back > 0 {
		l.back += len(text)
	}

	if over := len(l.lines) - maxLogLines; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	l.clamp()
}

func (l *Logger) clamp() {
	top := len(l.lines) - l.rows
	if top < 0 {
		top = 0
	}
	if l.back > top {
		l.back = top
	}
	if l.back < 0 {
		l.back = 0
	}
}

// Window returns the visible lines, oldest first.
func (l *Logger) Window() []string {
	end := len(l.lines) - l.back
	start := end - l.rows
	if start < 0 {
		start = 0
	}
	return l.lines[start:end]
}

// Home scrolls to the oldest text.
func (l *Logger) Home() {
	l.back = len(l.lines)
	l.clamp()
}

// End scrolls to the newest text and follows new output again.
func (l *Logger) End() {
	l.back = 0
}

// ScrollUp scrolls the view one line towards older text.
func (l *Logger) ScrollUp() {
	l.back++
	l.clamp()
}

// ScrollDown scrolls the view one line towards newer text.
func (l *Logger) ScrollDown() {
	l.back--
	l.clamp()
}
