package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderInt(item int, selected bool) string {
	if selected {
		return fmt.Sprintf("> %d", item)
	}
	return fmt.Sprintf("  %d", item)
}

func intItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestNewVirtualListModel(t *testing.T) {
	m := NewVirtualListModel(intItems(100), 10, 40, renderInt)

	assert.Equal(t, 100, m.ItemCount())
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 10, m.VisibleTo())
	assert.Equal(t, 10, m.Height())
	assert.Equal(t, 40, m.Width())
}

func TestView_RendersOnlyViewport(t *testing.T) {
	m := NewVirtualListModel(intItems(100), 5, 40, renderInt)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "> 0", lines[0])
	assert.Equal(t, "  4", lines[4])
}

func TestView_Empty(t *testing.T) {
	m := NewVirtualListModel([]int{}, 5, 40, renderInt)
	assert.Empty(t, m.View())
	assert.Nil(t, m.GetSelectedItem())

	// Navigation on an empty list is a no-op.
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Selected())
}

func TestKeyboardNavigation(t *testing.T) {
	m := NewVirtualListModel(intItems(50), 10, 40, renderInt)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 2},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, 1},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"up at top stays", tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, 10},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, 49},
		{"down at bottom stays", tea.KeyMsg{Type: tea.KeyDown}, 49},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, 39},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, 0},
	}

	for _, tt := range tests {
		m.Update(tt.msg)
		assert.Equal(t, tt.want, m.Selected(), tt.name)
		assert.GreaterOrEqual(t, m.Selected(), m.VisibleFrom(), tt.name)
		assert.Less(t, m.Selected(), m.VisibleTo(), tt.name)
	}
}

func TestRowAt(t *testing.T) {
	m := NewVirtualListModel(intItems(30), 10, 40, renderInt)
	m.SetSelected(20)

	from := m.VisibleFrom()
	idx, ok := m.RowAt(0)
	require.True(t, ok)
	assert.Equal(t, from, idx)

	idx, ok = m.RowAt(9)
	require.True(t, ok)
	assert.Equal(t, from+9, idx)

	_, ok = m.RowAt(10)
	assert.False(t, ok)
	_, ok = m.RowAt(-1)
	assert.False(t, ok)
}

func TestRowAt_ShortList(t *testing.T) {
	m := NewVirtualListModel(intItems(2), 10, 40, renderInt)

	_, ok := m.RowAt(1)
	assert.True(t, ok)
	_, ok = m.RowAt(2)
	assert.False(t, ok)
}

func TestWindowResize(t *testing.T) {
	m := NewVirtualListModel(intItems(100), 10, 40, renderInt)
	m.SetSelected(50)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 4})
	assert.Equal(t, 4, m.Height())
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 4, m.VisibleTo()-m.VisibleFrom())
	assert.GreaterOrEqual(t, 50, m.VisibleFrom())
	assert.Less(t, 50, m.VisibleTo())
}

func TestGetSelectedItem(t *testing.T) {
	m := NewVirtualListModel([]int{7, 8, 9}, 10, 40, renderInt)
	m.SetSelected(99)

	item := m.GetSelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, 9, *item)
}
