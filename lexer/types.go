package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
	TokenOpenAngle            // Open angle bracket: "<"
	TokenCloseAngle           // Close angle bracket: ">"
	TokenNewLine              // Newline: "\n"
	TokenWhitespace           // Space, tab, linefeed or carriage return: \s\f\t\r
	TokenAtom                 // Maximal run of any other characters
	TokenEOF                  // End of input
)

var tokenValues = map[TokenType][]rune{
	TokenOpenParen:  {'('},
	TokenCloseParen: {')'},
	TokenOpenAngle:  {'<'},
	TokenCloseAngle: {'>'},
	TokenNewLine:    {'\n'},
	TokenWhitespace: []rune(" \f\t\r"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenOpenAngle:  "open_angle",
	TokenCloseAngle: "close_angle",
	TokenNewLine:    "newline",
	TokenWhitespace: "separator",
	TokenAtom:       "atom",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}
