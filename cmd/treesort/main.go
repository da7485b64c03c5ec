package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/deltaticks/tickindex/types/avl"
)

func main() {
	var randCount int
	var seed uint64
	var printTree, stats, quiet bool
	flag.IntVar(&randCount, "rand", 0, "Insert n random keys instead of reading keys from arguments")
	flag.Uint64Var(&seed, "seed", 1, "Seed for -rand key generation")
	flag.BoolVar(&printTree, "print", false, "Print the tree sideways, right subtree on top")
	flag.BoolVar(&stats, "stats", false, "Print node count, tree height and insert time")
	flag.BoolVar(&quiet, "quiet", false, "Skip printing the sorted keys")
	flag.Parse()

	keys, err := inputKeys(randCount, seed, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	if len(keys) == 0 {
		log.Fatal("no keys, pass them as arguments or use -rand")
	}

	tree := avl.NewOrderedTree[int64]()
	timeStart := time.Now()
	for _, key := range keys {
		tree.Insert(key)
	}
	timeElapsed := time.Since(timeStart)

	if !quiet {
		tree.IterateInOrder(func(n *avl.Node[int64]) bool {
			fmt.Println(n.Key())
			return false
		})
	}
	if printTree {
		fmt.Print(tree.String())
	}
	if stats {
		fmt.Printf("Keys: %d\n", tree.Size())
		fmt.Printf("Height: %d\n", tree.Height())
		fmt.Printf("Inserted in %f s.\n", timeElapsed.Seconds())
	}
}

////////////////////////////////////////////////////////////////

// inputKeys collects the keys to insert, parsed from args or generated.
func inputKeys(randCount int, seed uint64, args []string) ([]int64, error) {
	if randCount > 0 {
		rng := rand.New(rand.NewPCG(seed, seed))
		keys := make([]int64, randCount)
		for i := range keys {
			keys[i] = rng.Int64N(1_000_000)
		}
		return keys, nil
	}
	keys := make([]int64, 0, len(args))
	for _, arg := range args {
		key, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", arg, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
