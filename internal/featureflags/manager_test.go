package featureflags

import "testing"

func TestEnabled_BooleanValues(t *testing.T) {
	m := NewManager("a=on,b=off,c=true,d=false,e=1,f=0")

	if !m.Enabled("a", "u@x.io") || !m.Enabled("c", "u@x.io") || !m.Enabled("e", "u@x.io") {
		t.Fatal("expected enabled boolean values to evaluate true")
	}
	if m.Enabled("b", "u@x.io") || m.Enabled("d", "u@x.io") || m.Enabled("f", "u@x.io") {
		t.Fatal("expected disabled boolean values to evaluate false")
	}
}

func TestEnabled_PercentageValues(t *testing.T) {
	m := NewManager("always=100%,never=0%,canary=25%")

	if !m.Enabled("always", "u@x.io") {
		t.Fatal("100% rollout should always be enabled")
	}
	if m.Enabled("never", "u@x.io") {
		t.Fatal("0% rollout should always be disabled")
	}

	first := m.Enabled("canary", "someone@x.io")
	for i := 0; i < 5; i++ {
		if got := m.Enabled("canary", "SOMEONE@x.io"); got != first {
			t.Fatal("rollout evaluation must be deterministic per subject")
		}
	}

	if m.Enabled("canary", "") {
		t.Fatal("percentage rollout requires a subject")
	}
}

func TestParseAndSnapshot(t *testing.T) {
	m := NewManager(" bad ,x=on, y = 20% ,z=off ")

	raw := m.Raw()
	if len(raw) != 3 {
		t.Fatalf("expected 3 parsed flags, got %d", len(raw))
	}
	if raw["x"] != "on" || raw["y"] != "20%" || raw["z"] != "off" {
		t.Fatalf("unexpected raw flags: %#v", raw)
	}

	snap := m.Snapshot("u@x.io")
	if len(snap) != 3 {
		t.Fatalf("expected snapshot size 3, got %d", len(snap))
	}
}

func TestLegacyVoteFallback(t *testing.T) {
	if NewManager("").Enabled(LegacyVoteFallback, "") {
		t.Fatal("legacy vote fallback must be off by default")
	}
	if !NewManager("LEGACY_VOTE_FALLBACK=on").Enabled(LegacyVoteFallback, "") {
		t.Fatal("flag names are case-insensitive")
	}

	var nilManager *Manager
	if nilManager.Enabled(LegacyVoteFallback, "") || len(nilManager.Raw()) != 0 {
		t.Fatal("nil manager must report everything off")
	}
}
