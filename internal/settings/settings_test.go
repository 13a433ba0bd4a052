package settings_test

import (
	"reflect"
	"testing"

	"github.com/cwbudde/corecheck/internal/settings"
)

func TestNewDefaults(t *testing.T) {
	s := settings.New()
	if s.Jobs != 1 {
		t.Fatalf("Jobs = %d, want 1", s.Jobs)
	}
	if s.XMLVersion != 2 {
		t.Fatalf("XMLVersion = %d, want 2", s.XMLVersion)
	}
	if s.CheckCodingStyle || s.Inconclusive || s.XML {
		t.Fatalf("expected style/inconclusive/xml to default off: %+v", s)
	}
}

func TestDefines(t *testing.T) {
	s := settings.New()
	s.UserDefines = "FOO;BAR=1;;BAZ"
	got := s.Defines()
	want := []string{"FOO", "BAR=1", "BAZ"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Defines() = %v, want %v", got, want)
	}
}

func TestDefinesEmpty(t *testing.T) {
	s := settings.New()
	if got := s.Defines(); got != nil {
		t.Fatalf("Defines() = %v, want nil", got)
	}
}

func TestEffectiveJobsClampsToOne(t *testing.T) {
	s := settings.New()
	s.Jobs = 0
	if got := s.EffectiveJobs(); got != 1 {
		t.Fatalf("EffectiveJobs() = %d, want 1", got)
	}
	s.Jobs = -3
	if got := s.EffectiveJobs(); got != 1 {
		t.Fatalf("EffectiveJobs() = %d, want 1", got)
	}
	s.Jobs = 4
	if got := s.EffectiveJobs(); got != 4 {
		t.Fatalf("EffectiveJobs() = %d, want 4", got)
	}
}
