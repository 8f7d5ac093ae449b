package leaderboard

import "testing"

func TestTopScorers(t *testing.T) {
	t.Parallel()

	got := TopScorers()
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	first := got[0]
	if first.League != "Premier League" || first.Player != "Erling Haaland" || first.Goals == nil || *first.Goals != 14 {
		t.Fatalf("unexpected first scorer: %+v", first)
	}
	if first.Assists != nil {
		t.Fatalf("scorer entries must not carry assists")
	}
	if first.Image != "https://images.fotmob.com/image_resources/playerimages/991282.png" {
		t.Fatalf("unexpected image %q", first.Image)
	}
}

func TestTopAssisters(t *testing.T) {
	t.Parallel()

	got := TopAssisters()
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	last := got[4]
	if last.League != "Ligue 1" || last.Player != "Ousmane Dembélé" || last.Assists == nil || *last.Assists != 8 {
		t.Fatalf("unexpected last assister: %+v", last)
	}
}

func TestCompute_UnknownKind(t *testing.T) {
	t.Parallel()

	if _, ok := Compute(Kind("own-goals")); ok {
		t.Fatalf("expected unknown kind to be rejected")
	}
	if entries, ok := Compute(KindTopAssisters); !ok || len(entries) != 5 {
		t.Fatalf("unexpected compute result: %v %v", entries, ok)
	}
}
