package matching

import "testing"

func TestScoreEmptyRequirements(t *testing.T) {
	if got := Score([]string{"Go", "SQL"}, nil); got != 0 {
		t.Fatalf("expected 0 for empty requirements, got %d", got)
	}
	if got := Score(nil, []string{}); got != 0 {
		t.Fatalf("expected 0 for empty requirements, got %d", got)
	}
}

func TestScoreCaseInsensitiveSubstring(t *testing.T) {
	if got := Score([]string{"Java", "SQL"}, []string{"java"}); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := Score([]string{"java"}, []string{"Java 17"}); got != 100 {
		t.Fatalf("expected substring match in both directions, got %d", got)
	}
}

func TestScoreNoOverlap(t *testing.T) {
	if got := Score([]string{"Python"}, []string{"Java", "SQL"}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestScorePartialRoundsHalfUp(t *testing.T) {
	// 1 of 3 requirements -> 33.33 -> 33
	if got := Score([]string{"go"}, []string{"go", "kafka", "terraform"}); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	// 2 of 3 -> 66.67 -> 67
	if got := Score([]string{"go", "kafka"}, []string{"go", "kafka", "terraform"}); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
	// 1 of 8 -> 12.5 -> 13
	reqs := []string{"go", "a1", "a2", "a3", "a4", "a5", "a6", "a7"}
	if got := Score([]string{"go"}, reqs); got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}
}

func TestScoreDuplicateRequirementsCountTwice(t *testing.T) {
	if got := Score([]string{"go"}, []string{"go", "go"}); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := Score([]string{"go"}, []string{"go", "go", "rust", "rust"}); got != 50 {
		t.Fatalf("expected duplicates in the denominator, got %d", got)
	}
}

func TestScoreEmptyStringMatchesEverything(t *testing.T) {
	// An empty requirement is contained in any skill.
	if got := Score([]string{"anything"}, []string{"  "}); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScoreBounds(t *testing.T) {
	cases := [][2][]string{
		{{}, {"a"}},
		{{"a"}, {"a"}},
		{{"a", "b", "c"}, {"a", "x", "y", "z"}},
		{{"x"}, {"x", "x", "x"}},
	}
	for _, c := range cases {
		got := Score(c[0], c[1])
		if got < 0 || got > 100 {
			t.Fatalf("score out of bounds: %d for %v", got, c)
		}
	}
}
