package reconcile

// CommonPrefixCut returns the length of the longest case-insensitive common
// prefix of two path-like strings, snapped backward to the nearest path
// separator so a rendered "matched" segment never splits a directory name.
// Identical strings cut at their full length. The result is always within
// [0, min(len(a), len(b))].
//
// Comparison folds ASCII case only: real-world desktop paths are
// case-insensitive in the ASCII range and byte indexes must stay exact for
// the caller's slicing.
func CommonPrefixCut(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0
	for i < n && foldByte(a[i]) == foldByte(b[i]) {
		i++
	}

	if i == len(a) && i == len(b) {
		return i
	}
	if i == 0 {
		return 0
	}
	if isSeparator(a[i-1]) {
		return i
	}
	for j := i - 1; j >= 0; j-- {
		if isSeparator(a[j]) {
			return j + 1
		}
	}
	return 0
}

// SplitAtCommonPrefix slices s into its segment shared with other and the
// divergent remainder, for rendering matched vs. different path parts.
func SplitAtCommonPrefix(s, other string) (matched, rest string) {
	cut := CommonPrefixCut(s, other)
	return s[:cut], s[cut:]
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// foldPath lowercases the ASCII range of a path for identity comparison.
func foldPath(s string) string {
	buf := []byte(s)
	changed := false
	for i, c := range buf {
		f := foldByte(c)
		if f != c {
			buf[i] = f
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(buf)
}
