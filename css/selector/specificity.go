package selector

// Specificity is the ranking of a selector in the cascade, as
// the number of class and id components, then the number of tag
// name components.
type Specificity [2]int

// Less returns true when s has a lower priority than other.
func (s Specificity) Less(other Specificity) bool {
	if s[0] != other[0] {
		return s[0] < other[0]
	}
	return s[1] < other[1]
}

func (s Specificity) add(other Specificity) Specificity {
	return Specificity{s[0] + other[0], s[1] + other[1]}
}
