package main

import (
	"fmt"
	"log"

	"github.com/Techdojo/Lantern/lexer"
)

func main() {
	input := `(define circle-area (lambda (r) (* pi (* r r))))`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize: ", err)
	}

	for _, tok := range tokens {
		fmt.Println(tok)
	}
}
