// Floorcrew-watch - terminal observer for a running simulation
//
// Dials the dashboard's frame stream and prints a one-line summary per
// second, plus evacuation progress while a drill is running.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nellwatson/go-floorcrew/internal/config"
	"github.com/nellwatson/go-floorcrew/pkg/web"
)

func main() {
	url := fmt.Sprintf("ws://localhost:%s/ws/frames", config.Port(config.DefaultPort))
	if len(os.Args) > 1 {
		url = os.Args[1]
	}

	fmt.Printf("Connecting to %s...\n", url)
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dial failed: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()
	fmt.Println("Connected. Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Bye")
		conn.Close()
		os.Exit(0)
	}()

	var lastPrint time.Time
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "stream closed: %v\n", err)
			os.Exit(1)
		}

		var frame web.Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			continue
		}
		if time.Since(lastPrint) < time.Second {
			continue
		}
		lastPrint = time.Now()

		c := frame.Census
		fmt.Printf("frame=%d workers=%d lod(h/m/l)=%d/%d/%d evading=%d",
			frame.Frame, c.Total, c.High, c.Medium, c.Low, c.Evading)
		if c.Evacuated > 0 {
			fmt.Printf(" evacuated=%d/%d", c.Evacuated, c.Total)
		}
		fmt.Println()
	}
}
