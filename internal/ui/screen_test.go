package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type recordingScreen struct {
	name string
	log  *[]string
	next *ScreenTransition
}

func (s *recordingScreen) Update() (*ScreenTransition, error) {
	tr := s.next
	s.next = nil
	return tr, nil
}

func (s *recordingScreen) Draw(*ebiten.Image) {}
func (s *recordingScreen) OnEnter()           { *s.log = append(*s.log, s.name+" enter") }
func (s *recordingScreen) OnExit()            { *s.log = append(*s.log, s.name+" exit") }
func (s *recordingScreen) Name() string       { return s.name }

func TestScreenManagerTransitions(t *testing.T) {
	var events []string
	list := &recordingScreen{name: "list", log: &events}
	detail := &recordingScreen{name: "detail", log: &events}
	other := &recordingScreen{name: "other", log: &events}

	sm := NewScreenManager()
	sm.Push(list)
	assert.Equal(t, list, sm.Current())

	list.next = &ScreenTransition{Type: TransitionPush, Screen: detail}
	assert.NoError(t, sm.Update())
	assert.Equal(t, 2, sm.StackSize())

	detail.next = &ScreenTransition{Type: TransitionReplace, Screen: other}
	assert.NoError(t, sm.Update())
	assert.Equal(t, other, sm.Current())
	assert.Equal(t, 2, sm.StackSize())

	other.next = &ScreenTransition{Type: TransitionPop}
	assert.NoError(t, sm.Update())
	assert.Equal(t, list, sm.Current())

	sm.ClearStack()
	assert.Nil(t, sm.Current())
	assert.NoError(t, sm.Update())

	assert.Equal(t, []string{
		"list enter",
		"detail enter",
		"detail exit", "other enter",
		"other exit", "list enter",
		"list exit",
	}, events)
}
