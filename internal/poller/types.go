package poller

import (
	"io"
	"net/http"
	"time"

	"repo-activity-feed/internal/model"
	"repo-activity-feed/pkg/response"
)

// Config configures a Poller.
type Config struct {
	URL      string
	Interval time.Duration
	Out      io.Writer    // defaults to os.Stdout
	Client   *http.Client // defaults to a client with a 10s timeout
}

// notification mirrors one element of GET /webhook/notifications.
type notification struct {
	Action     string             `json:"action"`
	Author     string             `json:"author"`
	FromBranch *string            `json:"from_branch"`
	ToBranch   string             `json:"to_branch"`
	Timestamp  response.Timestamp `json:"timestamp"`
}

func (n notification) toAction() model.Action {
	a := model.Action{
		Kind:      model.ActionKind(n.Action),
		Author:    n.Author,
		ToBranch:  n.ToBranch,
		Timestamp: n.Timestamp.Time(),
	}
	if n.FromBranch != nil {
		a.FromBranch = *n.FromBranch
	}
	return a
}
