package catalog

import "unicode/utf8"

// The deal pipeline needs "random looking" output that never changes
// between runs over the same input. These hashes are that source of
// randomness: stable functions of string structure and list position,
// never of wall clock or an RNG.

// StructuralSeed folds the character counts of an item's name and
// formatted price together with its list index into a value in [0, 100).
func StructuralSeed(name, price string, index int) int {
	return (utf8.RuneCountInString(name) + utf8.RuneCountInString(price) + index) % 100
}

// NameHash sums the code points of s. Used to derive per-item discount
// percentages and the synthetic rating/sales figures on category cards.
func NameHash(s string) int {
	sum := 0
	for _, r := range s {
		sum += int(r)
	}
	return sum
}
