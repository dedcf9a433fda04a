package main

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLogger_Window(t *testing.T) {
	l := NewLog(16)
	l.Log("a")
	l.Logf("%s-%d", "b", 2)
	l.Logln("c", "d")

	assert.Equal(t, []string{"a", "b-2", "", "c d"}, l.Window())

	l = NewLog(2)
	l.Log("a")
	l.Logln("c", "d")
	assert.Equal(t, []string{"", "c d"}, l.Window())
}

func TestLogger_Scroll(t *testing.T) {
	l := NewLog(4)
	for i := 0; i < 20; i++ {
		l.Logf("%d", i)
	}
	assert.Equal(t, "16", l.Window()[0])

	l.Home()
	assert.Equal(t, 4, len(l.Window()))
	assert.Equal(t, "0", l.Window()[0])

	// can't scroll past the oldest line
	l.ScrollUp()
	assert.Equal(t, "0", l.Window()[0])

	l.ScrollDown()
	assert.Equal(t, "1", l.Window()[0])

	// new text doesn't move a scrolled back view
	l.Log("20")
	assert.Equal(t, "1", l.Window()[0])

	l.End()
	assert.Equal(t, "17", l.Window()[0])

	// can't scroll past the newest line, and the view follows new text
	l.ScrollDown()
	l.Log("21")
	assert.Equal(t, "18", l.Window()[0])
	assert.Equal(t, "21", l.Window()[3])
}

func TestLogger_DropsOldest(t *testing.T) {
	l := NewLog(maxLogLines * 2)
	for i := 0; i < maxLogLines+10; i++ {
		l.Log(fmt.Sprint(i))
	}

	lines := l.Window()
	assert.Equal(t, maxLogLines, len(lines))
	assert.Equal(t, "10", lines[0])
}

func TestLogger_DropsOldestWhileScrolledBack(t *testing.T) {
	l := NewLog(4)
	for i := 0; i < maxLogLines; i++ {
		l.Log(fmt.Sprint(i))
	}

	l.Home()
	l.Log("new")
	assert.Equal(t, "1", l.Window()[0])
}
