// Motionlab dev server — serves exported assets and preview pages over
// plain HTTP for local inspection.
//
// Usage:
//
//	motionlab-serve [flags]
//
// Flags:
//
//	--addr  Listen address (default: 127.0.0.1:8000)
//	--dir   Directory to serve (default: current directory)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kavehm/motionlab/internal/devserver"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8000", "Listen address")
	dir := flag.String("dir", ".", "Directory to serve")
	flag.Parse()

	if _, err := os.Stat(*dir); err != nil {
		log.Fatalf("Cannot serve %s: %v", *dir, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	fmt.Printf("Serving %s on http://%s\n", *dir, *addr)
	fmt.Println("Press Ctrl+C to stop.")

	srv := &devserver.Server{Addr: *addr, Dir: *dir}
	if err := srv.ListenAndServe(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
