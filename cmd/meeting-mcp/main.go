package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/meeting-baas/meeting-mcp/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		os.Stderr.WriteString("Failed to create server: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := srv.Start(ctx); err != nil {
		os.Stderr.WriteString("Server error: " + err.Error() + "\n")
		srv.Stop()
		os.Exit(1)
	}

	srv.Stop()
}
