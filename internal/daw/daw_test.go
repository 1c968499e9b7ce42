package daw

import "testing"

func TestByExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Type
		ok   bool
	}{
		{".flp", FLStudio, true},
		{"flp", FLStudio, true},
		{".FLP", FLStudio, true},
		{".logicx", LogicPro, true},
		{".song", StudioOne, true},
		{".bwproject", Bitwig, true},
		{".wav", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		def, ok := ByExtension(tt.ext)
		if ok != tt.ok {
			t.Fatalf("ByExtension(%q) ok = %v, want %v", tt.ext, ok, tt.ok)
		}
		if ok && def.Type != tt.want {
			t.Fatalf("ByExtension(%q) = %q, want %q", tt.ext, def.Type, tt.want)
		}
	}
}

func TestByPath(t *testing.T) {
	def, ok := ByPath("/music/Song/Song.song")
	if !ok || def.Type != StudioOne {
		t.Fatalf("ByPath = %v/%v, want Studio One", def.Type, ok)
	}
	if def.Convention != FolderAlways {
		t.Fatalf("convention = %v, want FolderAlways", def.Convention)
	}
	if _, ok := ByPath("/music/readme.txt"); ok {
		t.Fatal("unsupported extension must not match")
	}
}

func TestStem(t *testing.T) {
	if got := Stem("/music/Night Drive.flp"); got != "Night Drive" {
		t.Fatalf("Stem = %q", got)
	}
	if got := Stem("MyTune.logicx"); got != "MyTune" {
		t.Fatalf("Stem = %q", got)
	}
}
