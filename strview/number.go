package strview

import "strconv"

// ParseNumber recognizes decimal numbers with an optional sign,
// fractional part, and `e[+-]?digits` exponent (spec.md §3's
// numeric/integer parse primitive, shared by the YAML scalar
// classifier and any format handler that needs to sniff whether a bare
// token is numeric before committing to a string). It reports ok=false
// for anything that is not a complete, fully-consumed number.
func ParseNumber(b []byte) (value float64, ok bool) {
	i := 0
	n := len(b)
	if i >= n {
		return 0, false
	}
	if b[i] == '+' || b[i] == '-' {
		i++
	}

	digitsStart := i
	for i < n && isDigit(b[i]) {
		i++
	}
	hasIntDigits := i > digitsStart

	if i < n && b[i] == '.' {
		i++
		fracStart := i
		for i < n && isDigit(b[i]) {
			i++
		}
		if !hasIntDigits && i == fracStart {
			return 0, false
		}
	} else if !hasIntDigits {
		return 0, false
	}

	if i < n && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < n && (b[j] == '+' || b[j] == '-') {
			j++
		}
		expStart := j
		for j < n && isDigit(b[j]) {
			j++
		}
		if j == expStart {
			return 0, false
		}
		i = j
	}

	if i != n {
		return 0, false
	}

	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
