package main

import (
	"log"
	"os"

	"github.com/vivekbasappa/cache/internal/cache"
)

func main() {
	// Capacity 4: small enough that the demo overflows quickly.
	c, err := cache.New[string, float64](4)
	if err != nil {
		log.Fatalf("new cache: %v", err)
	}

	// -------------------------------------------------------------------
	// 1) Fill to capacity. No evictions yet.
	// -------------------------------------------------------------------
	c.Insert("pi", 3.14)
	c.Insert("e", 2.17)
	c.Insert("gold", 1.61)
	c.Insert("sq2", 1.14)
	log.Printf("keys after fill (MRU->LRU): %v", c.Keys())

	// -------------------------------------------------------------------
	// 2) Overflow and promotion. "pi" is the oldest key and goes first;
	//    touching "e" makes "gold" the next eviction candidate instead.
	// -------------------------------------------------------------------
	c.Insert("zero", 0)
	log.Printf("keys after overflow (MRU->LRU): %v", c.Keys())

	if v, ok := c.Find("e"); ok {
		log.Printf("FIND e = %v (touches e -> MRU)", v)
	}

	c.Insert("one", 1)
	log.Printf("keys after promotion + overflow (MRU->LRU): %v", c.Keys())

	if err := c.WriteStats(os.Stdout); err != nil {
		log.Fatalf("write stats: %v", err)
	}

	// -------------------------------------------------------------------
	// 3) A hot key: repeated lookups only add hits, never evictions.
	// -------------------------------------------------------------------
	for i := 0; i < 30; i++ {
		if _, ok := c.Find("one"); !ok {
			log.Fatalf("FIND one: missing, expected resident")
		}
	}

	if err := c.WriteStats(os.Stdout); err != nil {
		log.Fatalf("write stats: %v", err)
	}
}
