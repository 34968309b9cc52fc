package schema

// FieldWidth returns the number of physical columns one field consumes.
// Leaves consume one column; a struct consumes the sum of its children.
func FieldWidth(f Field) int {
	if f.Kind != KindStruct {
		return 1
	}
	return Width(f.Child)
}

// Width returns the number of physical columns a whole schema consumes.
func Width(s *Schema) int {
	if s == nil {
		return 0
	}
	total := 0
	for _, f := range s.Fields {
		total += FieldWidth(f)
	}
	return total
}

// Calculator computes widths with per-schema caching. Widths are static
// per descriptor, so repeated lookups during a decode (null-group peeks,
// cursor advances) hit the cache.
//
// A Calculator is not safe for concurrent use.
type Calculator struct {
	cache map[*Schema]int
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*Schema]int),
	}
}

// Width returns the cached column width of s.
func (c *Calculator) Width(s *Schema) int {
	if s == nil {
		return 0
	}
	if w, ok := c.cache[s]; ok {
		return w
	}
	total := 0
	for _, f := range s.Fields {
		total += c.FieldWidth(f)
	}
	c.cache[s] = total
	return total
}

// FieldWidth returns the cached column width of one field.
func (c *Calculator) FieldWidth(f Field) int {
	if f.Kind != KindStruct {
		return 1
	}
	return c.Width(f.Child)
}
