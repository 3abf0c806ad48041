package types

// defaultSizes maps a primitive base name to the size suffix it takes
// when none is given (spec.md §4.1's "Defaults").
var defaultSizes = map[string]string{
	"int":    "256",
	"uint":   "256",
	"fixed":  "128x18",
	"ufixed": "128x18",
}

// normalize applies the default-width and alias substitutions of
// spec.md §4.1 before validation ever sees the name/size pair.
func normalize(name, size string) (string, string) {
	if name == "function" {
		return "bytes", "24"
	}

	if size == "" {
		if def, ok := defaultSizes[name]; ok {
			return name, def
		}
	}

	return name, size
}
