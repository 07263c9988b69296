// scripts/send-webhook/main.go
//
// Sends a sample GitHub delivery to a running API, for local testing without
// a real repository hook.
//
// Usage:
//   go run scripts/send-webhook/main.go -event push -author alice -to main
//   go run scripts/send-webhook/main.go -event pull_request -author bob -from feature -to main
//   go run scripts/send-webhook/main.go -event merge -author bob -from feature -to main

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

func main() {
	url := flag.String("url", "http://localhost:8080/webhook/receiver", "receiver URL")
	event := flag.String("event", "push", "push | pull_request | merge")
	author := flag.String("author", "alice", "pusher name or pull request author")
	from := flag.String("from", "feature", "source branch (pull_request, merge)")
	to := flag.String("to", "main", "target branch")
	flag.Parse()

	now := time.Now().UTC().Format(time.RFC3339)

	kind, body, err := buildDelivery(*event, *author, *from, *to, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("Failed to encode payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", kind)
	req.Header.Set("X-GitHub-Delivery", uuid.NewString())

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s %s\n", resp.Status, bytes.TrimSpace(respBody))
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}

// buildDelivery returns the X-GitHub-Event value and a minimal payload for event.
func buildDelivery(event, author, from, to, now string) (string, map[string]any, error) {
	switch event {
	case "push":
		return "push", map[string]any{
			"ref":    "refs/heads/" + to,
			"pusher": map[string]any{"name": author},
			"head_commit": map[string]any{
				"id":        uuid.NewString(),
				"timestamp": now,
			},
		}, nil
	case "pull_request":
		return "pull_request", pullRequest("opened", false, author, from, to, now), nil
	case "merge":
		return "pull_request", pullRequest("closed", true, author, from, to, now), nil
	default:
		return "", nil, fmt.Errorf("unknown event %q", event)
	}
}

func pullRequest(action string, merged bool, author, from, to, now string) map[string]any {
	pr := map[string]any{
		"id":         time.Now().UnixNano() / int64(time.Millisecond),
		"user":       map[string]any{"login": author},
		"head":       map[string]any{"ref": from},
		"base":       map[string]any{"ref": to},
		"created_at": now,
		"merged":     merged,
		"merged_at":  nil,
	}
	if merged {
		pr["merged_at"] = now
	}
	return map[string]any{"action": action, "pull_request": pr}
}
