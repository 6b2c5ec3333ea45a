package conjecturecli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// DumpBuffer writes a shrunken interesting buffer to path as a single hex
// line, atomically: a partially written dump must never be mistaken for
// a complete one by a later replay. This is a one-shot export, not the
// cross-run persistence the engine itself deliberately omits (spec
// Non-goals).
func DumpBuffer(path string, buffer []byte) error {
	encoded := hex.EncodeToString(buffer) + "\n"

	if err := atomic.WriteFile(path, bytes.NewReader([]byte(encoded))); err != nil {
		return fmt.Errorf("writing buffer dump: %w", err)
	}

	return nil
}

// LoadBuffer reads back a buffer previously written by DumpBuffer.
func LoadBuffer(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading buffer dump: %w", err)
	}

	decoded, err := hex.DecodeString(string(bytes.TrimSpace(data)))
	if err != nil {
		return nil, fmt.Errorf("decoding buffer dump %s: %w", path, err)
	}

	return decoded, nil
}
