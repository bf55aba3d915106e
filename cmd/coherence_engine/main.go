package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-topic-coherence/api"
	"github.com/gcbaptista/go-topic-coherence/internal/engine"
)

func main() {
	// Define command-line flags
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		port    = flag.String("port", "8080", "Port to run the server on")
		dataDir = flag.String("data-dir", "./coherence_data", "Directory to store corpus data")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Topic Coherence Engine - u_mass and c_v coherence evaluation for topic models\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                             # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                 # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --data-dir /tmp/coherence   # Use custom data directory\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Topic Coherence Engine v1.0.0\n")
		fmt.Printf("Segmentation, probability estimation, confirmation and aggregation over reference corpora\n")
		return
	}

	// Initialize the coherence engine
	log.Printf("Using data directory: %s", *dataDir)
	coherenceEngine := engine.NewEngine(*dataDir)

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, coherenceEngine)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
