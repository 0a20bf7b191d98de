package gosheet

// Flatten expands group properties in place, recursively, preserving the
// position of every non-group declaration. After flattening no group variant
// remains. It has no failure mode.
func Flatten(props []Property) []Property {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		if g, ok := p.(GroupProp); ok {
			out = append(out, Flatten(g.Properties)...)
			continue
		}
		out = append(out, p)
	}
	return out
}
