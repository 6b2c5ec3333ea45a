package conjecturecli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadSeed reads a decimal int64 seed from path, for handing to
// conjecture.NewSeededSource so a past search can be reproduced exactly
// (the same seed always yields the same sequence of draws).
func LoadSeed(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file: %w", err)
	}

	seed, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	return seed, nil
}
