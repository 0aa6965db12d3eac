package layout

import (
	"fmt"
	"reflect"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		size    int
		lengths []int
	}{
		{"exact multiple", 100, 50, []int{50, 50}},
		{"remainder", 105, 50, []int{50, 50, 5}},
		{"single short group", 7, 50, []int{7}},
		{"size one", 3, 1, []int{1, 1, 1}},
		{"empty input", 0, 50, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := makeRefs(tt.count)
			groups := Partition(refs, tt.size)

			if len(groups) != len(tt.lengths) {
				t.Fatalf("Partition(%d, %d) = %d groups, want %d", tt.count, tt.size, len(groups), len(tt.lengths))
			}
			var flat []string
			for i, g := range groups {
				if len(g) != tt.lengths[i] {
					t.Errorf("group %d has %d refs, want %d", i, len(g), tt.lengths[i])
				}
				flat = append(flat, g...)
			}
			if !reflect.DeepEqual(flat, refs) {
				t.Errorf("concatenated groups do not reproduce input order")
			}
		})
	}
}

func TestPartitionInvalidSize(t *testing.T) {
	if got := Partition(makeRefs(5), 0); got != nil {
		t.Errorf("Partition with size 0 = %v, want nil", got)
	}
	if got := Partition(makeRefs(5), -1); got != nil {
		t.Errorf("Partition with size -1 = %v, want nil", got)
	}
}

func makeRefs(n int) []string {
	if n == 0 {
		return nil
	}
	refs := make([]string, n)
	for i := range refs {
		refs[i] = fmt.Sprintf("img_%03d.jpg", i)
	}
	return refs
}
