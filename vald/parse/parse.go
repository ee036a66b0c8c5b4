package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxBlockRange caps how many blocks a single range argument may expand to
const MaxBlockRange = 1000

// BlockNumbers parses block numbers given as single numbers ("12"), comma separated lists ("12,15") or inclusive ranges ("12-20")
func BlockNumbers(args []string) ([]uint64, error) {
	var numbers []uint64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}

			parsed, err := parseField(field)
			if err != nil {
				return nil, err
			}
			numbers = append(numbers, parsed...)
		}
	}

	if len(numbers) == 0 {
		return nil, fmt.Errorf("no block numbers given")
	}

	return numbers, nil
}

func parseField(field string) ([]uint64, error) {
	from, to, isRange := strings.Cut(field, "-")
	if !isRange {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid block number %q", field)
		}
		return []uint64{n}, nil
	}

	start, err := strconv.ParseUint(strings.TrimSpace(from), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range start in %q", field)
	}

	end, err := strconv.ParseUint(strings.TrimSpace(to), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range end in %q", field)
	}

	if end < start {
		return nil, fmt.Errorf("range %q ends before it starts", field)
	}

	if end-start >= MaxBlockRange {
		return nil, fmt.Errorf("range %q spans more than %d blocks", field, MaxBlockRange)
	}

	numbers := make([]uint64, 0, end-start+1)
	for n := start; n <= end; n++ {
		numbers = append(numbers, n)
	}

	return numbers, nil
}
