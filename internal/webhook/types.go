package webhook

import "encoding/json"

// RateLimitConfig holds receiver throttling settings.
type RateLimitConfig struct {
	RequestsPerMin int // Max requests per minute per client; 0 disables limiting
}

// pushPayload is the subset of a GitHub push event this service reads.
type pushPayload struct {
	Ref    string `json:"ref"` // refs/heads/<branch>
	Pusher struct {
		Name string `json:"name"`
	} `json:"pusher"`
	HeadCommit struct {
		ID        string `json:"id"`
		Timestamp string `json:"timestamp"`
	} `json:"head_commit"`
}

// pullRequestPayload is the subset of a GitHub pull_request event this service reads.
type pullRequestPayload struct {
	Action      string `json:"action"` // opened, closed, reopened, synchronize, ...
	PullRequest struct {
		ID   json.RawMessage `json:"id"` // number in practice, string tolerated
		User struct {
			Login string `json:"login"`
		} `json:"user"`
		Head struct {
			Ref string `json:"ref"`
		} `json:"head"`
		Base struct {
			Ref string `json:"ref"`
		} `json:"base"`
		Merged    bool   `json:"merged"`
		CreatedAt string `json:"created_at"`
		MergedAt  string `json:"merged_at"`
	} `json:"pull_request"`
}
