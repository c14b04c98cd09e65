// Package stats derives counts, sums and averages from already-filtered
// record collections. Every metric is defined for empty input and is
// reported as zero rather than NaN.
package stats

import "math"

func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, item := range items {
		out[key(item)]++
	}
	return out
}

func SumBy[T any, K comparable](items []T, key func(T) K, value func(T) float64) map[K]float64 {
	out := make(map[K]float64)
	for _, item := range items {
		out[key(item)] += value(item)
	}
	return out
}

// Average returns the mean of value over items rounded to one decimal, or
// 0 for an empty collection.
func Average[T any](items []T, value func(T) float64) float64 {
	var sum float64
	for _, item := range items {
		sum += value(item)
	}
	return mean(sum, len(items))
}

// Percent returns part/total*100 rounded to the nearest integer, or 0 when
// total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func mean(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return Round1(sum / float64(count))
}
