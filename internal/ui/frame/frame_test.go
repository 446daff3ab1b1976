package frame

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/riordanpawley/femto/internal/buffer"
	"github.com/riordanpawley/femto/internal/log"
	"github.com/riordanpawley/femto/internal/services/editor"
	"github.com/riordanpawley/femto/internal/services/files"
	"github.com/riordanpawley/femto/internal/ui/styles"
)

func newEditor(lines []string, width, height int) *editor.Service {
	ed := editor.NewService(files.NewService(afero.NewMemMapFs(), log.Nop()), "femto", log.Nop())
	if lines != nil {
		ed.Document().Replace(lines)
	}
	ed.Resize(width, height)
	return ed
}

func rowTexts(f Frame) []string {
	texts := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		texts[i] = r.Text
	}
	return texts
}

func TestCompose_EmptyDocument(t *testing.T) {
	ed := newEditor(nil, 20, 5)
	f := Compose(ed, 20, 5, "~")

	require.Len(t, f.Rows, 4)
	assert.Equal(t, Row{Text: ""}, f.Rows[0])
	for _, row := range f.Rows[1:] {
		assert.Equal(t, Row{Text: "~", Filler: true}, row)
	}
	assert.Equal(t, Point{X: 1, Y: 1}, f.Cursor)
	assert.False(t, f.Prompt)
	assert.Equal(t, "\n~\n~\n~\nfemto row: 1, col: 1", f.String())
}

func TestCompose_CustomFiller(t *testing.T) {
	f := Compose(newEditor(nil, 20, 3), 20, 3, ".")
	assert.Equal(t, []string{"", "."}, rowTexts(f))
}

func TestCompose_HorizontalScroll(t *testing.T) {
	ed := newEditor([]string{"abcdefghijklmnopqrstuvwxyz", "ab"}, 10, 4)
	ed.Document().MoveCaret(0, buffer.LineEnd)

	f := Compose(ed, 10, 4, "~")

	assert.Equal(t, []string{"rstuvwxyz", "", "~"}, rowTexts(f))
	assert.Equal(t, Point{X: 10, Y: 1}, f.Cursor)
}

func TestCompose_VerticalScroll(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	ed := newEditor(lines, 20, 6)
	ed.Document().MoveCaret(10, 0)

	f := Compose(ed, 20, 6, "~")

	assert.Equal(t, []string{"line 6", "line 7", "line 8", "line 9", "line 10"}, rowTexts(f))
	assert.Equal(t, Point{X: 1, Y: 5}, f.Cursor)
	assert.Equal(t, "femt row: 11, col: 1", f.Bar.String())
}

func TestCompose_LongLineIsCut(t *testing.T) {
	ed := newEditor([]string{strings.Repeat("x", 50)}, 20, 3)
	f := Compose(ed, 20, 3, "~")
	assert.Equal(t, strings.Repeat("x", 20), f.Rows[0].Text)
}

func TestCompose_PromptCaretInStatusBar(t *testing.T) {
	ed := newEditor([]string{"hello"}, 40, 10)
	ed.StartOpen()
	for _, r := range "a.txt" {
		ed.DispatchRune(r)
	}

	f := Compose(ed, 40, 10, "~")

	assert.True(t, f.Prompt)
	assert.Equal(t, Point{X: len("Open file at: ") + 5 + 1, Y: 10}, f.Cursor)
	assert.True(t, strings.HasPrefix(f.Bar.String(), "Open file at: a.txt"))
	assert.Equal(t, "hello", f.Rows[0].Text)
}

func TestCompose_ErrorMessage(t *testing.T) {
	ed := newEditor(nil, 60, 4)
	require.Error(t, ed.Open("missing.txt"))

	f := Compose(ed, 60, 4, "~")

	assert.Contains(t, f.Bar.String(), "missing.txt")
	assert.Equal(t, "", f.Bar.Label)
}

func TestCompose_TabsAreOneCell(t *testing.T) {
	ed := newEditor([]string{"a\tb"}, 20, 3)
	f := Compose(ed, 20, 3, "~")
	assert.Equal(t, "a b", strings.Split(f.String(), "\n")[0])
}

func TestCompose_ControlCharactersAreOneCell(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "ctl.txt", []byte("a\x1b[2Jb\rc\n"), 0o644))
	ed := editor.NewService(files.NewService(fsys, log.Nop()), "femto", log.Nop())
	ed.Resize(20, 3)
	require.NoError(t, ed.Open("ctl.txt"))

	f := Compose(ed, 20, 3, "~")

	row := strings.Split(f.String(), "\n")[0]
	assert.Equal(t, "a?[2Jb?c", row)
	assert.Equal(t, utf8.RuneCountInString(row), ansi.StringWidth(row))

	rendered := f.Render(styles.New(), NewCursor())
	assert.NotContains(t, rendered, "\x1b[2J")
	assert.NotContains(t, rendered, "\r")
}

func TestCompose_TinyScreen(t *testing.T) {
	ed := newEditor([]string{"abc"}, 0, 0)

	f := Compose(ed, 0, 0, "~")
	assert.Empty(t, f.Rows)
	assert.Equal(t, "", f.String())

	f = Compose(ed, 5, 1, "~")
	assert.Empty(t, f.Rows)
	assert.Equal(t, 5, utf8.RuneCountInString(f.String()))
}

func TestRender_MatchesPlainText(t *testing.T) {
	st := styles.New()

	tests := []struct {
		name  string
		setup func(ed *editor.Service)
	}{
		{"caret at start of line", func(ed *editor.Service) {}},
		{"caret past end of line", func(ed *editor.Service) { ed.Document().MoveCaret(0, buffer.LineEnd) }},
		{"caret on second line", func(ed *editor.Service) { ed.Document().MoveCaret(1, 2) }},
		{"prompt", func(ed *editor.Service) { ed.StartSave() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := newEditor([]string{"first\tline", "second"}, 30, 6)
			tt.setup(ed)
			f := Compose(ed, 30, 6, "~")

			got := strings.Split(ansi.Strip(f.Render(st, NewCursor())), "\n")
			want := strings.Split(f.String(), "\n")
			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, strings.TrimRight(want[i], " "), strings.TrimRight(got[i], " "), "row %d", i)
			}
		})
	}
}

func TestRender_CaretPastEndIsBlankCell(t *testing.T) {
	ed := newEditor([]string{"abc"}, 20, 3)
	ed.Document().MoveCaret(0, buffer.LineEnd)
	f := Compose(ed, 20, 3, "~")

	first := strings.Split(ansi.Strip(f.Render(styles.New(), NewCursor())), "\n")[0]
	assert.Equal(t, "abc ", first)
}

func TestCompose_Property_CaretOnScreen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,60}`), 1, 40).Draw(t, "lines")
		width := rapid.IntRange(1, 80).Draw(t, "width")
		height := rapid.IntRange(2, 30).Draw(t, "height")

		ed := newEditor(lines, width, height)
		moves := rapid.SliceOfN(rapid.IntRange(0, 5), 0, 40).Draw(t, "moves")
		for _, m := range moves {
			switch m {
			case 0:
				ed.Document().MoveCaret(1, 0)
			case 1:
				ed.Document().MoveCaret(-1, 0)
			case 2:
				ed.Document().MoveCaret(0, 1)
			case 3:
				ed.Document().MoveCaret(0, -1)
			case 4:
				ed.Document().MoveCaret(0, buffer.LineEnd)
			case 5:
				ed.DispatchRune('z')
			}
		}

		f := Compose(ed, width, height, "~")

		if len(f.Rows) != height-1 {
			t.Fatalf("got %d content rows, want %d", len(f.Rows), height-1)
		}
		for i, row := range f.Rows {
			if n := utf8.RuneCountInString(row.Text); n > width {
				t.Fatalf("row %d is %d wide, screen is %d", i, n, width)
			}
		}
		if f.Cursor.X < 1 || f.Cursor.X > width || f.Cursor.Y < 1 || f.Cursor.Y > height-1 {
			t.Fatalf("caret %+v outside %dx%d content area", f.Cursor, width, height-1)
		}
	})
}
