package curriculum

import "fmt"

// Move removes the element at from and reinserts it at to, shifting the
// elements in between. A stable array-move, not a swap. Both the pointer
// drag path and the keyboard path funnel into this one function.
func Move[T any](list []T, from, to int) ([]T, error) {
	n := len(list)
	if from < 0 || from >= n {
		return nil, fmt.Errorf("move: source index %d out of range [0,%d)", from, n)
	}
	if to < 0 || to >= n {
		return nil, fmt.Errorf("move: target index %d out of range [0,%d)", to, n)
	}
	out := make([]T, 0, n)
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	rest := append([]T(nil), out[to:]...)
	out = append(out[:to], list[from])
	out = append(out, rest...)
	return out, nil
}
