package vtcore

import "testing"

func feedStr(e *Emulator, s string) {
	e.Feed([]byte(s))
}

func mustEmulator(t testingT, opts ...Option) *Emulator {
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// testingT is the subset of *testing.T this helper needs, so it can be
// called from any _test.go file in the package without an import cycle.
type testingT interface {
	Fatalf(format string, args ...any)
}

func TestSnapshot_Text(t *testing.T) {
	term := mustEmulator(t, WithSize(3, 10))
	feedStr(term, "Hello")
	feedStr(term, "\x1b[2;1H")
	feedStr(term, "World")

	snap := term.Snapshot(SnapshotDetailText)

	if snap.Size.Rows != 3 {
		t.Errorf("Size.Rows = %d, want 3", snap.Size.Rows)
	}
	if snap.Size.Cols != 10 {
		t.Errorf("Size.Cols = %d, want 10", snap.Size.Cols)
	}
	if len(snap.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(snap.Lines))
	}
	if snap.Lines[0].Text != "Hello" {
		t.Errorf("Lines[0].Text = %q, want %q", snap.Lines[0].Text, "Hello")
	}
	if snap.Lines[1].Text != "World" {
		t.Errorf("Lines[1].Text = %q, want %q", snap.Lines[1].Text, "World")
	}
	if snap.Lines[0].Segments != nil {
		t.Error("Text mode should not have segments")
	}
	if snap.Lines[0].Cells != nil {
		t.Error("Text mode should not have cells")
	}
}

func TestSnapshot_Cursor(t *testing.T) {
	term := mustEmulator(t, WithSize(5, 10))
	feedStr(term, "ABC")

	snap := term.Snapshot(SnapshotDetailText)

	if snap.Cursor.Row != 0 {
		t.Errorf("Cursor.Row = %d, want 0", snap.Cursor.Row)
	}
	if snap.Cursor.Col != 3 {
		t.Errorf("Cursor.Col = %d, want 3", snap.Cursor.Col)
	}
	if !snap.Cursor.Visible {
		t.Error("Cursor.Visible = false, want true")
	}
	if snap.Cursor.Style != "block" {
		t.Errorf("Cursor.Style = %q, want %q", snap.Cursor.Style, "block")
	}
}

func TestSnapshot_Styled(t *testing.T) {
	term := mustEmulator(t, WithSize(3, 20))
	feedStr(term, "\x1b[31mRed\x1b[0m Normal \x1b[32mGreen\x1b[0m")

	snap := term.Snapshot(SnapshotDetailStyled)

	if len(snap.Lines) < 1 {
		t.Fatal("expected at least 1 line")
	}
	line := snap.Lines[0]
	if len(line.Segments) < 3 {
		t.Fatalf("expected at least 3 segments, got %d", len(line.Segments))
	}
	if line.Segments[0].Text != "Red" {
		t.Errorf("Segment[0].Text = %q, want %q", line.Segments[0].Text, "Red")
	}
	if line.Cells != nil {
		t.Error("styled mode should not have cells")
	}
}

func TestSnapshot_Full(t *testing.T) {
	term := mustEmulator(t, WithSize(3, 10))
	feedStr(term, "Hi")

	snap := term.Snapshot(SnapshotDetailFull)

	line := snap.Lines[0]
	if len(line.Cells) != 10 {
		t.Fatalf("expected 10 cells, got %d", len(line.Cells))
	}
	if line.Cells[0].Char != "H" {
		t.Errorf("Cells[0].Char = %q, want %q", line.Cells[0].Char, "H")
	}
	if line.Cells[1].Char != "i" {
		t.Errorf("Cells[1].Char = %q, want %q", line.Cells[1].Char, "i")
	}
	if line.Cells[2].Char != " " {
		t.Errorf("Cells[2].Char = %q, want %q", line.Cells[2].Char, " ")
	}
}

func TestSnapshot_Attributes(t *testing.T) {
	term := mustEmulator(t, WithSize(3, 20))
	feedStr(term, "\x1b[1mBold\x1b[0m")

	snap := term.Snapshot(SnapshotDetailFull)

	for i := 0; i < 4; i++ {
		if !snap.Lines[0].Cells[i].Attributes.Bold {
			t.Errorf("Cell[%d] should be bold", i)
		}
	}
}

func TestSnapshot_Underline(t *testing.T) {
	for _, seq := range []string{"\x1b[4m", "\x1b[4:1m", "\x1b[4:2m", "\x1b[4:3m"} {
		term := mustEmulator(t, WithSize(3, 20))
		feedStr(term, seq+"Text\x1b[0m")

		snap := term.Snapshot(SnapshotDetailFull)
		if !snap.Lines[0].Cells[0].Attributes.Underline {
			t.Errorf("sequence %q: expected underline", seq)
		}
	}
}

func TestSnapshot_BlinkStyles(t *testing.T) {
	for _, seq := range []string{"\x1b[5m", "\x1b[6m"} {
		term := mustEmulator(t, WithSize(3, 20))
		feedStr(term, seq+"Text\x1b[0m")

		snap := term.Snapshot(SnapshotDetailFull)
		if !snap.Lines[0].Cells[0].Attributes.Blink {
			t.Errorf("sequence %q: expected blink", seq)
		}
	}
}

func TestSnapshot_Hyperlink(t *testing.T) {
	term := mustEmulator(t, WithSize(3, 40))
	feedStr(term, "\x1b]8;id=test;https://example.com\x07Link\x1b]8;;\x07")

	snap := term.Snapshot(SnapshotDetailFull)

	for i := 0; i < 4; i++ {
		cell := snap.Lines[0].Cells[i]
		if cell.Hyperlink == nil {
			t.Errorf("Cell[%d] should have hyperlink", i)
			continue
		}
		if cell.Hyperlink.URI != "https://example.com" {
			t.Errorf("Cell[%d].Hyperlink.URI = %q, want %q", i, cell.Hyperlink.URI, "https://example.com")
		}
	}
}

func TestSnapshot_WideChar(t *testing.T) {
	term := mustEmulator(t, WithSize(3, 10))
	feedStr(term, "中")

	snap := term.Snapshot(SnapshotDetailFull)

	if !snap.Lines[0].Cells[0].Wide {
		t.Error("Cell[0] should be wide")
	}
	if !snap.Lines[0].Cells[1].WideCont {
		t.Error("Cell[1] should be a wide continuation")
	}
}

func TestColorToHex(t *testing.T) {
	palette := NewPalette()
	tests := []struct {
		name     string
		color    Color
		def      Color
		expected string
	}{
		{"default-bg", DefaultColor, TrueColor(0, 0, 0), "#000000"},
		{"truecolor-white", TrueColor(255, 255, 255), TrueColor(0, 0, 0), "#ffffff"},
		{"truecolor-red", TrueColor(255, 0, 0), TrueColor(0, 0, 0), "#ff0000"},
		{"indexed-red", Indexed(1), TrueColor(0, 0, 0), "#cd0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := colorToHex(tt.color, palette, tt.def); result != tt.expected {
				t.Errorf("colorToHex(%v) = %q, want %q", tt.color, result, tt.expected)
			}
		})
	}
}

func TestCursorStyleToString(t *testing.T) {
	tests := []struct {
		style    CursorStyle
		expected string
	}{
		{CursorStyleBlinkingBlock, "block"},
		{CursorStyleSteadyBlock, "block"},
		{CursorStyleBlinkingUnderline, "underline"},
		{CursorStyleSteadyUnderline, "underline"},
		{CursorStyleBlinkingBar, "bar"},
		{CursorStyleSteadyBar, "bar"},
	}

	for _, tt := range tests {
		if result := cursorStyleToString(tt.style); result != tt.expected {
			t.Errorf("cursorStyleToString(%v) = %q, want %q", tt.style, result, tt.expected)
		}
	}
}

func TestSnapshot_EmptyTerminal(t *testing.T) {
	term := mustEmulator(t, WithSize(3, 10))

	snap := term.Snapshot(SnapshotDetailText)

	if snap.Size.Rows != 3 {
		t.Errorf("Size.Rows = %d, want 3", snap.Size.Rows)
	}
	if len(snap.Lines) != 3 {
		t.Errorf("len(Lines) = %d, want 3", len(snap.Lines))
	}
	for i, line := range snap.Lines {
		if line.Text != "" {
			t.Errorf("Lines[%d].Text = %q, want empty", i, line.Text)
		}
	}
}

func TestSnapshot_StyledSegments(t *testing.T) {
	term := mustEmulator(t, WithSize(3, 30))
	feedStr(term, "\x1b[31mRedText\x1b[0m")

	snap := term.Snapshot(SnapshotDetailStyled)

	if len(snap.Lines[0].Segments) < 1 {
		t.Fatal("expected at least 1 segment")
	}
	if snap.Lines[0].Segments[0].Text != "RedText" {
		t.Errorf("Segment[0].Text = %q, want %q", snap.Lines[0].Segments[0].Text, "RedText")
	}
}
