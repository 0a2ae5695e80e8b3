package settings

import (
	"path/filepath"
	"testing"

	"github.com/SiRune-Etch/aws-cloud-controller/logs"
)

func TestStoreCreatesDefaultsOnFirstLoad(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	s, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Default() {
		t.Errorf("first load = %+v, want defaults", s)
	}

	// The file should now exist and load the same values again.
	again, err := st.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if again != s {
		t.Errorf("second load = %+v, want %+v", again, s)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "nested", "settings.json"))

	want := Settings{
		RefreshIntervalSecs: 300,
		ShowLogsPanel:       true,
		LogLevel:            logs.LevelWarning,
		AlertThresholdSecs:  1800,
		SoundEnabled:        false,
		DefaultProfile:      "staging",
	}
	if err := st.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
