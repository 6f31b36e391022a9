package game

import "testing"

func TestNewMatchRejectsEvenBestOf(t *testing.T) {
	for _, bestOf := range []int{-1, 0, 2, 4} {
		if _, err := NewMatch(bestOf); err == nil {
			t.Fatalf("NewMatch(%d) should fail", bestOf)
		}
	}
	for _, bestOf := range []int{1, 3, 5, 7} {
		if _, err := NewMatch(bestOf); err != nil {
			t.Fatalf("NewMatch(%d) failed: %v", bestOf, err)
		}
	}
}

func TestSetsToWinIsMajority(t *testing.T) {
	cases := map[int]int{1: 1, 3: 2, 5: 3, 7: 4}
	for bestOf, want := range cases {
		m, err := NewMatch(bestOf)
		if err != nil {
			t.Fatalf("NewMatch(%d): %v", bestOf, err)
		}
		if got := m.SetsToWin(); got != want {
			t.Fatalf("SetsToWin for best-of-%d = %d, want %d", bestOf, got, want)
		}
	}
}

func TestMatchEndsExactlyAtMajority(t *testing.T) {
	m, err := NewMatch(3)
	if err != nil {
		t.Fatal(err)
	}
	m.Start()

	if over := m.SetWon(0); over {
		t.Fatalf("match over after one set of a best-of-3")
	}
	if !m.Started {
		t.Fatalf("started cleared before the majority was reached")
	}
	if over := m.SetWon(0); !over {
		t.Fatalf("match not over after two sets of a best-of-3")
	}
	if m.Started {
		t.Fatalf("started still true after match end")
	}
	if m.Sets[0] != 2 || m.Sets[1] != 0 {
		t.Fatalf("sets = %v, want [2 0]", m.Sets)
	}

	// Scoring after the match is over must not change anything.
	if over := m.SetWon(1); over {
		t.Fatalf("terminal match reported another completion")
	}
	if m.Sets[1] != 0 {
		t.Fatalf("terminal match still accumulating sets: %v", m.Sets)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	m, err := NewMatch(3)
	if err != nil {
		t.Fatal(err)
	}
	m.Start()
	m.SetWon(1)

	m.Start()
	m.Start()
	if !m.Started {
		t.Fatalf("expected started=true after restart")
	}
	if m.Sets[0] != 0 || m.Sets[1] != 0 {
		t.Fatalf("restart did not clear sets: %v", m.Sets)
	}
}

func TestRestartAfterMatchOver(t *testing.T) {
	m, err := NewMatch(1)
	if err != nil {
		t.Fatal(err)
	}
	m.Start()
	if !m.SetWon(1) {
		t.Fatalf("best-of-1 should end after a single set")
	}
	m.Start()
	if !m.Started || m.Sets[1] != 0 {
		t.Fatalf("restart from terminal state broken: started=%v sets=%v", m.Started, m.Sets)
	}
}
