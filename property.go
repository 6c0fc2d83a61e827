package lunar

// PropertyKind identifies which field of a Property holds its value.
type PropertyKind uint8

const (
	PropertyInt   PropertyKind = iota // Int holds the value
	PropertyFloat                     // Float holds the value
	PropertyBool                      // Bool holds the value
	PropertyValue                     // Value holds an arbitrary Go value
)

// Property is a small fixed-size value attached to an entity or builder
// under a string key. Properties are copied by value; a Property holding a
// pointer in Value shares the pointee.
type Property struct {
	Kind  PropertyKind
	Int   int64
	Float float64
	Bool  bool
	Value any
}

// IntProperty returns an integer property.
func IntProperty(v int64) Property {
	return Property{Kind: PropertyInt, Int: v}
}

// FloatProperty returns a floating-point property.
func FloatProperty(v float64) Property {
	return Property{Kind: PropertyFloat, Float: v}
}

// BoolProperty returns a boolean property.
func BoolProperty(v bool) Property {
	return Property{Kind: PropertyBool, Bool: v}
}

// ValueProperty returns a property holding an arbitrary value.
func ValueProperty(v any) Property {
	return Property{Kind: PropertyValue, Value: v}
}

// AsInt returns the property as an integer, converting from float and bool.
func (p Property) AsInt() int64 {
	switch p.Kind {
	case PropertyFloat:
		return int64(p.Float)
	case PropertyBool:
		if p.Bool {
			return 1
		}
		return 0
	default:
		return p.Int
	}
}

// AsFloat returns the property as a float, converting from int and bool.
func (p Property) AsFloat() float64 {
	switch p.Kind {
	case PropertyInt:
		return float64(p.Int)
	case PropertyBool:
		if p.Bool {
			return 1
		}
		return 0
	default:
		return p.Float
	}
}

// AsBool reports whether the property holds a true or non-zero value.
func (p Property) AsBool() bool {
	switch p.Kind {
	case PropertyInt:
		return p.Int != 0
	case PropertyFloat:
		return p.Float != 0
	case PropertyValue:
		return p.Value != nil
	default:
		return p.Bool
	}
}

type namedProperty struct {
	name  string
	value Property
}

// propertyList is an ordered sequence of uniquely named properties.
// Lookups are linear; entities typically carry a handful of properties.
type propertyList []namedProperty

func (l propertyList) index(name string) int {
	for i := range l {
		if l[i].name == name {
			return i
		}
	}
	return -1
}

// set overwrites the property called name, or appends it if absent.
func (l *propertyList) set(name string, p Property) {
	if i := l.index(name); i >= 0 {
		(*l)[i].value = p
		return
	}
	*l = append(*l, namedProperty{name: name, value: p})
}

func (l propertyList) get(name string) (Property, bool) {
	if i := l.index(name); i >= 0 {
		return l[i].value, true
	}
	return Property{}, false
}

// remove deletes the property called name, preserving the order of the rest.
func (l *propertyList) remove(name string) bool {
	i := l.index(name)
	if i < 0 {
		return false
	}
	s := *l
	copy(s[i:], s[i+1:])
	s[len(s)-1] = namedProperty{}
	*l = s[:len(s)-1]
	return true
}

func (l propertyList) key(i int) (string, bool) {
	if i < 0 || i >= len(l) {
		return "", false
	}
	return l[i].name, true
}

// clone returns an independent copy of l.
func (l propertyList) clone() propertyList {
	if len(l) == 0 {
		return nil
	}
	out := make(propertyList, len(l))
	copy(out, l)
	return out
}
