package resolver

import "strings"

// StaticRegistry is a simple map-backed FunctionRegistry, grounded on
// the sql.Functions map dolthub's function registry package builds at
// init time. Lookups are case-insensitive, matching SQL identifier
// folding, and support overloading by argument count/type the way
// dolthub's Function0/1/2/3/N split does, generalized to arbitrary
// arity via ArgTypes.
type StaticRegistry struct {
	fns map[string][]*FunctionDescriptor
}

// NewStaticRegistry builds a registry from the given descriptors.
func NewStaticRegistry(descs ...*FunctionDescriptor) *StaticRegistry {
	r := &StaticRegistry{fns: make(map[string][]*FunctionDescriptor, len(descs))}
	for _, d := range descs {
		r.Register(d)
	}
	return r
}

// Register adds a descriptor as an overload of its name.
func (r *StaticRegistry) Register(d *FunctionDescriptor) {
	key := strings.ToLower(d.Name)
	r.fns[key] = append(r.fns[key], d)
}

// LookupFunction resolves name and argTypes to the first registered
// overload whose ArgTypes are compatible with argTypes: equal length,
// and each position either an exact ValueType match or a numeric pair
// (BigInt/Double), which scalarlib's cast-based coercion bridges at
// the invocation boundary.
func (r *StaticRegistry) LookupFunction(name string, argTypes []ValueType) (*FunctionDescriptor, bool) {
	for _, fn := range r.fns[strings.ToLower(name)] {
		if compatibleArgTypes(fn.ArgTypes, argTypes) {
			return fn, true
		}
	}
	return nil, false
}

func compatibleArgTypes(formal, actual []ValueType) bool {
	if len(formal) != len(actual) {
		return false
	}
	for i, f := range formal {
		a := actual[i]
		if f == a {
			continue
		}
		if isNumericType(f) && isNumericType(a) {
			continue
		}
		return false
	}
	return true
}

func isNumericType(t ValueType) bool {
	return t == BigInt || t == Double
}
