package star

// Class is a Harvard spectral class.
type Class byte

const (
	ClassO Class = 'O'
	ClassB Class = 'B'
	ClassA Class = 'A'
	ClassF Class = 'F'
	ClassG Class = 'G'
	ClassK Class = 'K'
	ClassM Class = 'M'
)

var classes = []struct {
	class Class
	above float32
	color RGBA
}{
	{ClassO, 20000, RGBA{0.6, 0.7, 1.0, 0.8}},
	{ClassB, 10000, RGBA{0.6, 0.6, 1.0, 0.8}},
	{ClassA, 7500, RGBA{0.7, 0.7, 0.9, 0.8}},
	{ClassF, 6000, RGBA{1.0, 0.9, 0.7, 0.8}},
	{ClassG, 5200, RGBA{1.0, 0.95, 0.4, 0.8}},
	{ClassK, 3700, RGBA{1.0, 0.4, 0.4, 0.8}},
}

var classM = RGBA{1.0, 0.0, 0.0, 0.8}

// ClassFor returns the spectral class for a surface temperature in kelvin.
func ClassFor(temperature float32) Class {
	for _, c := range classes {
		if temperature > c.above {
			return c.class
		}
	}
	return ClassM
}

// Color returns the display colour for the class.
func (c Class) Color() RGBA {
	for _, e := range classes {
		if e.class == c {
			return e.color
		}
	}
	return classM
}

func (c Class) String() string {
	return string(rune(c))
}
