// =============================================================================
// Sales Analytics - Input Reader Module
// =============================================================================
//
// This module reads the raw sales data file and shields the rest of the
// pipeline from text encoding problems. Legacy exports arrive in a mix of
// encodings, so the reader tries each configured encoding in order until one
// decodes the file without failure.
//
// FEATURES:
//   - Ordered encoding fallback (utf-8, then the single-byte codepages)
//   - Header line removal
//   - Blank line removal
//   - Missing input file degrades to an empty line set, not an error
//
// =============================================================================

package reader

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// =============================================================================
// ENCODING TABLE
// =============================================================================

// decoders maps configured encoding names to their charmap decoders.
// UTF-8 is handled separately because it is validated, not transformed.
var decoders = map[string]*charmap.Charmap{
	"latin-1": charmap.ISO8859_1,
	"cp1252":  charmap.Windows1252,
}

// =============================================================================
// READER FUNCTIONS
// =============================================================================

// ReadLines reads the sales data file and returns its data lines.
//
// The file is decoded with the first encoding in encodings that succeeds.
// UTF-8 "succeeds" when the byte stream is valid UTF-8; the single-byte
// codepages accept any byte stream, so they only make sense as fallbacks
// after utf-8, mirroring how the legacy exports are actually produced.
//
// The first line is treated as the column header and skipped. Blank lines
// are dropped. A missing input file returns an empty line set and no error;
// any other read failure is returned to the caller.
func ReadLines(path string, encodings []string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	text, err := decodeWithFallback(data, encodings)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input file %s: %w", path, err)
	}

	return splitDataLines(text), nil
}

// decodeWithFallback tries each encoding in order and returns the first
// successful decode.
func decodeWithFallback(data []byte, encodings []string) (string, error) {
	for _, name := range encodings {
		switch name {
		case "utf-8":
			if utf8.Valid(data) {
				return string(data), nil
			}
		default:
			cm, ok := decoders[name]
			if !ok {
				return "", fmt.Errorf("unsupported encoding %q", name)
			}
			decoded, err := decodeCharmap(data, cm)
			if err == nil {
				return decoded, nil
			}
		}
	}
	return "", fmt.Errorf("no configured encoding could decode the file (tried: %s)", strings.Join(encodings, ", "))
}

// decodeCharmap decodes a byte stream with the given single-byte codepage.
func decodeCharmap(data []byte, cm *charmap.Charmap) (string, error) {
	out, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// splitDataLines splits decoded text into trimmed data lines, dropping the
// header line and any blank lines.
func splitDataLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(raw) <= 1 {
		return nil
	}

	// Skip the header row; it names the columns, it is not data.
	lines := make([]string, 0, len(raw)-1)
	for _, line := range raw[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
