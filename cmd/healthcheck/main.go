// Package main probes the siteforge /health endpoint and reports the
// result through its exit code. It exists for container HEALTHCHECK
// directives in scratch images, where no curl or wget is available.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"siteforge/internal/config"
)

const probeTimeout = 3 * time.Second

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(config.DefaultPort)
	}

	client := &http.Client{Timeout: probeTimeout}
	resp, err := client.Get("http://localhost:" + port + "/health")
	if err != nil {
		fmt.Fprintf(os.Stderr, "health probe failed: %v\n", err)
		os.Exit(1)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "health probe got status %d\n", resp.StatusCode)
		os.Exit(1)
	}
}
