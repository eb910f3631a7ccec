package game

import (
	"reflect"
	"testing"
)

func TestReduceLine(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "empty line",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile slides",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "two distinct pairs",
			input:    []int{2, 2, 4, 4},
			expected: []int{4, 8, 0, 0},
			score:    12,
		},
		{
			name:     "four equal tiles merge pairwise",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "three equal tiles, earliest pair wins",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "merged tile does not re-merge",
			input:    []int{2, 2, 4, 0},
			expected: []int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merge across gap",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "already reduced",
			input:    []int{4, 2, 0, 0},
			expected: []int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "longer line",
			input:    []int{2, 2, 2, 2, 2, 0},
			expected: []int{4, 4, 2, 0, 0, 0},
			score:    8,
		},
		{
			name:     "length one",
			input:    []int{2},
			expected: []int{2},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := reduceLine(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("reduceLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("reduceLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestReduceLineDoesNotMutateInput(t *testing.T) {
	input := []int{2, 2, 0, 4}
	reduceLine(input)

	if !reflect.DeepEqual(input, []int{2, 2, 0, 4}) {
		t.Errorf("reduceLine mutated its input: %v", input)
	}
}

func TestReverseLine(t *testing.T) {
	result := reverseLine([]int{1, 2, 3, 4})
	if !reflect.DeepEqual(result, []int{4, 3, 2, 1}) {
		t.Errorf("reverseLine = %v, want [4 3 2 1]", result)
	}
}
