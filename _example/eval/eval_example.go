package main

import (
	"fmt"
	"log"

	lantern "github.com/Techdojo/Lantern"
)

func main() {
	program := `(begin
		(define circle-area (lambda (r) (* pi (* r r))))
		(circle-area 10))`

	env := lantern.NewGlobalEnv()

	value, err := lantern.EvalString(program, env)
	if err != nil {
		log.Fatal("lantern.EvalString: ", err)
	}

	fmt.Println(value)
}
