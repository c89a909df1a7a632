package kir

// Fixed tables mapping source operator and built-in-name spellings to
// IR symbols. A spelling missing from its table is an unsupported
// construct: the tables are the whole contract, there is no fallback.

var binOps = map[string]string{
	"+":  "+",
	"-":  "-",
	"*":  "*",
	"/":  "/",
	"//": "//",
	"%":  "%",
	"**": "**",
	"&":  "&",
	"|":  "|",
	"^":  "^",
	"<<": "<<",
	">>": ">>",
	"@":  "@",
}

// "is", "is not" and "not in" have no IR symbol and are rejected.
var compareOps = map[string]string{
	"==": "%eq",
	"!=": "%ne",
	"<":  "%lt",
	"<=": "%le",
	">":  "%gt",
	">=": "%ge",
	"in": "%in",
}

var boolOps = map[string]string{
	"and": "%and",
	"or":  "%or",
}

// Bitwise invert and unary plus have no IR symbol and are rejected.
var unaryOps = map[string]string{
	"not": "%not",
	"-":   "%neg",
}

var unitOps = map[string]string{
	"*":  "%umul",
	"/":  "%udiv",
	"**": "%upow",
}

// reservedProperties lists the environment values reachable as
// attribute access on these names. Any other attribute access is an
// ordinary variable chain.
var reservedProperties = map[string]map[string]bool{
	"msg": {
		"sender": true,
		"value":  true,
		"gas":    true,
	},
	"block": {
		"difficulty": true,
		"timestamp":  true,
		"coinbase":   true,
		"number":     true,
		"prevhash":   true,
	},
	"tx": {
		"origin": true,
	},
}

// Reserved names the program assembler and call translator key on.
const (
	eventMarker     = "__log__"
	constructorName = "__init__"
	weiValueFunc    = "as_wei_value"
)
