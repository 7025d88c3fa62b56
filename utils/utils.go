package utils

var Has = struct{}{}

type Set map[string]struct{}

func (s Set) Add(key string) {
	s[key] = Has
}

func (s Set) Extend(keys []string) {
	for _, key := range keys {
		s[key] = Has
	}
}

func (s Set) Has(key string) bool {
	_, in := s[key]
	return in
}

func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func IsIn(l []string, s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// AsciiLower transforms the ASCII letters of s to their lower case version,
// leaving other runes untouched.
func AsciiLower(s string) string {
	out := []rune(s)
	for index, c := range out {
		if 'A' <= c && c <= 'Z' {
			out[index] = c + ('a' - 'A')
		}
	}
	return string(out)
}
