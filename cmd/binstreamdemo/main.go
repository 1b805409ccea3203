// Command binstreamdemo exercises the container record format under a
// heap profile, the same pprof-driven smoke pattern the runtime engine
// itself was developed against.
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/binstream/examples/container"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	payloads := [][]byte{
		[]byte("azerty"),
		[]byte("hello world"),
		[]byte("random payload of arbitrary length"),
	}

	for i := 0; i < 10000; i++ {
		for _, payload := range payloads {
			encoded, err := container.EncodeRecord(payload)
			if err != nil {
				log.Fatalf("encode: %v", err)
			}
			if _, err := container.DecodeRecord(encoded); err != nil {
				log.Fatalf("decode: %v", err)
			}
		}
	}

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
}
