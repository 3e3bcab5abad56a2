// Package main runs the standalone easymidi API server.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/daviddekleer/EasyMIDI/pkg/api"
)

func main() {
	port := flag.Int("port", defaultPort(), "Server port")
	flag.Parse()

	fmt.Printf("easymidi API listening on :%d (swagger at /swagger/index.html)\n", *port)
	if err := api.StartServer(*port); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// defaultPort honors the PORT environment variable so the binary runs
// under the usual container conventions without a flag.
func defaultPort() int {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			return p
		}
	}
	return 8080
}
