package volumes

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Parse expands a volume selection such as "1-5,7,17-18-19" into a sorted,
// de-duplicated list. "a-b" is an inclusive range; three or more numbers
// joined by hyphens name the volumes bound into one omnibus.
func Parse(input string) ([]int, error) {
	seen := map[int]bool{}
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		nums, err := parsePart(part)
		if err != nil {
			return nil, err
		}
		for _, n := range nums {
			seen[n] = true
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}

func parsePart(part string) ([]int, error) {
	if !strings.Contains(part, "-") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid volume number: %q", part)
		}
		return []int{n}, nil
	}
	fields := strings.Split(part, "-")
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			if len(fields) == 2 {
				return nil, fmt.Errorf("invalid volume range format: %q", part)
			}
			return nil, fmt.Errorf("invalid omnibus format: %q", part)
		}
		nums = append(nums, n)
	}
	if len(nums) > 2 {
		return nums, nil
	}
	var out []int
	for n := nums[0]; n <= nums[1]; n++ {
		out = append(out, n)
	}
	return out, nil
}

// Contains reports whether v is in the sorted list vols.
func Contains(vols []int, v int) bool {
	i := sort.SearchInts(vols, v)
	return i < len(vols) && vols[i] == v
}
