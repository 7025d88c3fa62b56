package utils

type Fl = float32

func MinF(x, y Fl) Fl {
	if x < y {
		return x
	}
	return y
}

func MaxF(x, y Fl) Fl {
	if x > y {
		return x
	}
	return y
}
