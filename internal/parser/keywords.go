package parser

var KEYWORDS = map[string]TokenType{
	"def":    DEF,
	"if":     IF,
	"elif":   ELIF,
	"else":   ELSE,
	"for":    FOR,
	"in":     IN,
	"return": RETURN,
	"pass":   PASS,
	"break":  BREAK,
	"assert": ASSERT,
	"and":    AND,
	"or":     OR,
	"not":    NOT,
	"is":     IS,
	"True":   TRUE,
	"False":  FALSE,
}
