package collections

// Pair is an adjacent couple of elements.
type Pair[T any] struct {
	First, Second T
}

// Pairs returns each adjacent pair of items.
func Pairs[T any](items []T) []Pair[T] {
	return pairs(items, false)
}

// CircularPairs is Pairs plus a closing (last, first) pair when there are at
// least two items.
func CircularPairs[T any](items []T) []Pair[T] {
	return pairs(items, true)
}

func pairs[T any](items []T, circular bool) []Pair[T] {
	if len(items) < 2 {
		return nil
	}
	out := make([]Pair[T], 0, len(items))
	for i := 0; i+1 < len(items); i++ {
		out = append(out, Pair[T]{First: items[i], Second: items[i+1]})
	}
	if circular {
		out = append(out, Pair[T]{First: items[len(items)-1], Second: items[0]})
	}
	return out
}

// MedianOutwards returns the indexes [0, n) ordered from the middle outwards:
// m, m+1, m-1, m+2, m-2, ... with m = (n-1)/2.
func MedianOutwards(n int) []int {
	if n <= 0 {
		return nil
	}
	order := make([]int, 0, n)
	m := (n - 1) / 2
	order = append(order, m)
	for k := 1; len(order) < n; k++ {
		if m+k < n {
			order = append(order, m+k)
		}
		if m-k >= 0 {
			order = append(order, m-k)
		}
	}
	return order
}
