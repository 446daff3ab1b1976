package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_KeyAssignments(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"Quit uses ctrl+q", km.Quit, []string{"ctrl+q"}},
		{"Open uses ctrl+o", km.Open, []string{"ctrl+o"}},
		{"Save uses ctrl+s", km.Save, []string{"ctrl+s"}},
		{"Cancel uses esc", km.Cancel, []string{"esc"}},
		{"Enter uses enter", km.Enter, []string{"enter"}},
		{"Backspace uses backspace", km.Backspace, []string{"backspace"}},
		{"Delete uses delete", km.Delete, []string{"delete"}},
		{"Up uses up", km.Up, []string{"up"}},
		{"Down uses down", km.Down, []string{"down"}},
		{"Left uses left", km.Left, []string{"left"}},
		{"Right uses right", km.Right, []string{"right"}},
		{"Home uses home", km.Home, []string{"home"}},
		{"End uses end", km.End, []string{"end"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
			require.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestDefaultKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()

	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlQ}, km.Quit))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlO}, km.Open))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, km.Save))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, km.Cancel))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Enter))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyBackspace}, km.Backspace))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDelete}, km.Delete))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyHome}, km.Home))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnd}, km.End))

	// plain letters are text, not commands
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, km.Quit))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")}, km.Open))
}
