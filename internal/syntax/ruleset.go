package syntax

// Ruleset describes how one language is highlighted. Word lists are
// matched between separators; LineComment marks the start of a comment
// that runs to the end of the row.
type Ruleset struct {
	Name        string   `yaml:"name"`
	Extensions  []string `yaml:"extensions"`
	Keywords    []string `yaml:"keywords"`
	Types       []string `yaml:"types"`
	Consts      []string `yaml:"consts"`
	LineComment string   `yaml:"line_comment"`
	Numbers     bool     `yaml:"numbers"`
	Strings     bool     `yaml:"strings"`
}

// RulesetC is the built-in C/C++ ruleset.
func RulesetC() *Ruleset {
	return &Ruleset{
		Name:       "c",
		Extensions: []string{"c", "h", "cpp"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return",
			"else", "struct", "union", "typedef", "static", "enum", "class",
			"using", "namespace", "case", "const", "inline", "auto",
			"constexpr", "template", "typename",
			"#include", "#pragma", "#define", "#if", "#ifdef", "#ifndef",
			"#elif", "#endif",
		},
		Types: []string{
			"void", "char", "bool", "short", "int", "size_t", "ssize_t",
			"ptrdiff_t", "long", "float", "double",
		},
		Consts:      []string{"true", "false", "NULL"},
		LineComment: "//",
		Numbers:     true,
		Strings:     true,
	}
}

// RulesetGo is the built-in Go ruleset.
func RulesetGo() *Ruleset {
	return &Ruleset{
		Name:       "go",
		Extensions: []string{"go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if",
			"import", "interface", "map", "package", "range", "return",
			"select", "struct", "switch", "type", "var",
		},
		Types: []string{
			"bool", "byte", "complex64", "complex128", "error", "float32",
			"float64", "int", "int8", "int16", "int32", "int64", "rune",
			"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		},
		Consts:      []string{"true", "false", "nil", "iota"},
		LineComment: "//",
		Numbers:     true,
		Strings:     true,
	}
}
