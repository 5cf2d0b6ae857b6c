package main

import (
	"log"

	"github.com/Techdojo/Lantern/ast"
	"github.com/Techdojo/Lantern/parser"
)

func main() {
	input := `(if (> 3 2) (quote (1 2 3)) (list 4.5 <= 6))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse: ", err)
	}

	ast.Print(root)
}
