package curriculum

import "testing"

func TestMoveStableShift(t *testing.T) {
	list := []string{"item0", "item1", "item2", "item3"}

	out, err := Move(list, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"item2", "item0", "item1", "item3"}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("index %d: got %q want %q (full: %v)", i, out[i], want[i], out)
		}
	}
}

func TestMoveForward(t *testing.T) {
	list := []string{"a", "b", "c", "d", "e"}
	out, err := Move(list, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "c", "d", "b", "e"}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("index %d: got %q want %q", i, out[i], want[i])
		}
	}
}

func TestMoveIsPermutation(t *testing.T) {
	list := []string{"q", "w", "e", "r", "t", "y"}
	for from := 0; from < len(list); from++ {
		for to := 0; to < len(list); to++ {
			out, err := Move(list, from, to)
			if err != nil {
				t.Fatalf("move(%d,%d): %v", from, to, err)
			}
			if len(out) != len(list) {
				t.Fatalf("move(%d,%d): length %d", from, to, len(out))
			}
			seen := map[string]int{}
			for _, v := range out {
				seen[v]++
			}
			for _, v := range list {
				if seen[v] != 1 {
					t.Fatalf("move(%d,%d): %q appears %d times", from, to, v, seen[v])
				}
			}
		}
	}
}

func TestMoveRejectsOutOfRange(t *testing.T) {
	list := []int{1, 2, 3}
	if _, err := Move(list, -1, 0); err == nil {
		t.Fatal("expected error for negative source")
	}
	if _, err := Move(list, 0, 3); err == nil {
		t.Fatal("expected error for target past end")
	}
	if _, err := Move(list, 5, 1); err == nil {
		t.Fatal("expected error for source past end")
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	list := []string{"a", "b", "c", "d"}
	if _, err := Move(list, 3, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if list[i] != want[i] {
			t.Fatalf("input mutated at %d: %v", i, list)
		}
	}
}
