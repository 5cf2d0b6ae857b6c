package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	lantern "github.com/Techdojo/Lantern"
	"github.com/chzyer/readline"
)

var (
	expr   = flag.String("e", "", "evaluate a single expression and exit")
	prompt = flag.String("prompt", "lantern> ", "interactive prompt")
)

func main() {
	flag.Parse()

	env := lantern.NewGlobalEnv()

	if *expr != "" {
		if !run(*expr, env) {
			os.Exit(1)
		}
		return
	}

	rl, err := readline.New(*prompt)
	if err != nil {
		log.Fatal("readline: ", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		run(line, env)
	}
}

// run evaluates one expression against env and prints the result, unless
// the result is the unit marker. Returns false when evaluation failed.
func run(src string, env *lantern.Env) bool {
	value, err := lantern.EvalString(src, env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	if !value.IsNil() {
		fmt.Println(value)
	}
	return true
}
