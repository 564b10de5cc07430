package highlight

import "unicode"

// Tokenize splits s into word tokens and whitespace-run tokens. Whitespace
// runs are kept as tokens of their own so that concatenating the token slice
// reproduces s exactly, which is what lets a segment list reconstruct both
// input documents byte for byte.
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	start := 0
	inSpace := false
	for i, r := range s {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
			continue
		}
		if isSpace != inSpace {
			tokens = append(tokens, s[start:i])
			start = i
			inSpace = isSpace
		}
	}
	return append(tokens, s[start:])
}
