package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"arith"
)

func main() {
	log.SetFlags(0)
	var (
		verb string
		echo bool
	)
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()
	verb += "\n"

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			run(arg, verb, echo)
		}
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		run(sc.Text(), verb, echo)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

func run(src, verb string, echo bool) {
	tokens, err := arith.Tokenize(src)
	if err != nil {
		log.Println(err)
		return
	}
	n, err := arith.Parse(tokens)
	if err != nil {
		log.Println(err)
		return
	}
	if n == nil {
		return
	}
	if echo {
		fmt.Printf("%v : ", n)
	}
	r, err := n.Eval(arith.NewContext())
	if err != nil {
		log.Println(err)
		return
	}
	fmt.Printf(verb, r)
}
