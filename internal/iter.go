package internal

import (
	"iter"
	"maps"
	"strconv"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Defines builds a define table from integer constants, formatted as
// hexadecimal literals.
func Defines(values map[string]int) iter.Seq2[string, string] {
	defines := make(map[string]string, len(values))
	for key, value := range values {
		defines[key] = "0x" + strconv.FormatInt(int64(value), 16)
	}

	return maps.All(defines)
}

// DefineValues parses a define table back into integers, skipping any
// define that is not an integer literal.
func DefineValues(defines iter.Seq2[string, string]) (values map[string]int) {
	values = map[string]int{}
	for key, str := range defines {
		value, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			continue
		}
		values[key] = int(value)
	}

	return
}
