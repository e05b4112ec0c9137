package vtcore

import "testing"

func TestNewCell(t *testing.T) {
	cell := NewCell()

	if cell.Char != ' ' {
		t.Errorf("expected space, got '%c'", cell.Char)
	}
	if cell.Style.Fg.Kind != ColorDefault {
		t.Error("expected default foreground")
	}
	if cell.Flags != 0 {
		t.Error("expected no flags")
	}
}

func TestCellReset(t *testing.T) {
	cell := NewCell()
	cell.Char = 'A'
	cell.SetFlag(CellFlagWide)

	tmpl := StyleAttr{Fg: DefaultColor, Bg: Indexed(4)}
	cell.Reset(tmpl)

	if cell.Char != ' ' {
		t.Errorf("expected space after reset, got '%c'", cell.Char)
	}
	if cell.HasFlag(CellFlagWide) {
		t.Error("expected no flags after reset")
	}
	if cell.Style.Bg != (Indexed(4)) {
		t.Error("expected reset to paint with the template style")
	}
}

func TestCellFlags(t *testing.T) {
	cell := NewCell()

	cell.SetFlag(CellFlagWide)
	if !cell.IsWide() {
		t.Error("expected wide flag")
	}

	cell.SetFlag(CellFlagDirty)
	if !cell.IsWide() || !cell.IsDirty() {
		t.Error("expected both flags")
	}

	cell.ClearFlag(CellFlagWide)
	if cell.IsWide() {
		t.Error("expected wide flag to be cleared")
	}
	if !cell.IsDirty() {
		t.Error("expected dirty flag to remain")
	}
}

func TestCellDirty(t *testing.T) {
	cell := NewCell()

	if cell.IsDirty() {
		t.Error("expected cell not dirty initially")
	}

	cell.MarkDirty()
	if !cell.IsDirty() {
		t.Error("expected cell to be dirty")
	}

	cell.ClearDirty()
	if cell.IsDirty() {
		t.Error("expected cell not dirty after clear")
	}
}

func TestCellWideCont(t *testing.T) {
	cell := NewCell()
	cell.SetFlag(CellFlagWide)
	if !cell.IsWide() {
		t.Error("expected cell to be wide")
	}

	cont := NewCell()
	cont.SetFlag(CellFlagWideCont)
	if !cont.IsWideCont() {
		t.Error("expected cell to be a wide continuation")
	}
}

func TestCellCopy(t *testing.T) {
	cell := NewCell()
	cell.Char = 'X'
	cell.SetFlag(CellFlagWide | CellFlagDirty)

	copied := cell.Copy()

	if copied.Char != 'X' {
		t.Errorf("expected 'X', got '%c'", copied.Char)
	}
	if !copied.HasFlag(CellFlagWide) || !copied.HasFlag(CellFlagDirty) {
		t.Error("expected flags to be copied")
	}

	cell.Char = 'Y'
	if copied.Char != 'X' {
		t.Error("copy should be independent")
	}
}
