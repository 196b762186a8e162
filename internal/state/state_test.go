package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()                    { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Update(deltaTime float64)  { *s.log = append(*s.log, "update "+s.name) }
func (s *recordingState) Draw(screen *ebiten.Image) {}
func (s *recordingState) Exit()                     { *s.log = append(*s.log, "exit "+s.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm := NewStateMachine()

	sm.Update(0.016) // без состояния ничего не происходит
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)
	sm.Resume(a)
	sm.Update(0.016)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "update a"}, log)
	assert.Same(t, a, sm.Current())
}

func TestMenuFadesInAndBlinksPrompt(t *testing.T) {
	m := NewMenuState(NewStateMachine(), nil)
	m.Enter()
	assert.Equal(t, 1.0, m.fadeAlpha())
	assert.True(t, m.promptVisible())

	m.advance(0.5)
	assert.InDelta(t, 0.5, m.fadeAlpha(), 1e-9)
	assert.False(t, m.promptVisible())

	m.advance(0.8) // 1.3s
	assert.Zero(t, m.fadeAlpha())
	assert.True(t, m.promptVisible())

	m.advance(0.4) // 1.7s, следующий цикл
	assert.True(t, m.promptVisible())
	m.advance(0.5) // 2.2s
	assert.False(t, m.promptVisible())
}
