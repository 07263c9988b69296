package webhook_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"repo-activity-feed/internal/model"
	"repo-activity-feed/internal/webhook"
	"repo-activity-feed/pkg/datemath"
)

func newNormalizer() *webhook.Normalizer {
	return webhook.NewNormalizer(datemath.NewUTCParser())
}

func TestNormalizePush(t *testing.T) {
	n := newNormalizer()

	t.Run("Valid push", func(t *testing.T) {
		payload := `{
			"ref": "refs/heads/main",
			"pusher": {"name": "alice", "email": "alice@example.com"},
			"head_commit": {"id": "abc123", "timestamp": "2024-01-01T00:00:00Z"}
		}`

		got, err := n.Normalize("push", []byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := model.Action{
			RequestID: "abc123",
			Author:    "alice",
			Kind:      model.ActionPush,
			ToBranch:  "main",
			Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %+v, got %+v", want, got)
		}
		if got.HasFromBranch() {
			t.Errorf("push must not carry a source branch")
		}
	})

	t.Run("Branch is last ref segment", func(t *testing.T) {
		refs := map[string]string{
			"refs/heads/main":        "main",
			"refs/heads/feature/x":   "x",
			"refs/tags/v1.0.0":       "v1.0.0",
			"develop":                "develop",
			"refs/heads/release-2.1": "release-2.1",
		}
		for ref, want := range refs {
			payload := `{"ref":"` + ref + `","pusher":{"name":"alice"},"head_commit":{"timestamp":"2024-01-01T00:00:00Z"}}`
			got, err := n.Normalize("push", []byte(payload))
			if err != nil {
				t.Fatalf("ref %q: unexpected error: %v", ref, err)
			}
			if got.ToBranch != want {
				t.Errorf("ref %q: expected %q, got %q", ref, want, got.ToBranch)
			}
		}
	})

	t.Run("Timestamp converted to UTC", func(t *testing.T) {
		payload := `{"ref":"refs/heads/main","pusher":{"name":"alice"},"head_commit":{"timestamp":"2024-01-01T07:00:00+07:00"}}`
		got, err := n.Normalize("push", []byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		if !got.Timestamp.Equal(want) || got.Timestamp.Location() != time.UTC {
			t.Errorf("expected %v in UTC, got %v", want, got.Timestamp)
		}
	})

	t.Run("Naive timestamp assumed UTC", func(t *testing.T) {
		payload := `{"ref":"refs/heads/main","pusher":{"name":"alice"},"head_commit":{"timestamp":"2024-01-01T00:00:00"}}`
		got, err := n.Normalize("push", []byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Timestamp.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected timestamp %v", got.Timestamp)
		}
	})

	t.Run("Timestamp truncated to microseconds", func(t *testing.T) {
		payload := `{"ref":"refs/heads/main","pusher":{"name":"alice"},"head_commit":{"timestamp":"2024-01-01T00:00:00.123456789Z"}}`
		got, err := n.Normalize("push", []byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 1, 1, 0, 0, 0, 123456000, time.UTC)
		if !got.Timestamp.Equal(want) {
			t.Errorf("expected %v, got %v", want, got.Timestamp)
		}
	})

	t.Run("Missing pusher name", func(t *testing.T) {
		payload := `{"ref":"refs/heads/main","head_commit":{"timestamp":"2024-01-01T00:00:00Z"}}`
		_, err := n.Normalize("push", []byte(payload))
		assertFields(t, err, []string{"pusher.name"})
	})

	t.Run("Missing everything", func(t *testing.T) {
		_, err := n.Normalize("push", []byte(`{}`))
		assertFields(t, err, []string{"pusher.name", "ref", "head_commit.timestamp"})
	})

	t.Run("Ref ending in slash has no branch", func(t *testing.T) {
		payload := `{"ref":"refs/heads/","pusher":{"name":"alice"},"head_commit":{"timestamp":"2024-01-01T00:00:00Z"}}`
		_, err := n.Normalize("push", []byte(payload))
		assertFields(t, err, []string{"ref"})
	})

	t.Run("Malformed timestamp", func(t *testing.T) {
		payload := `{"ref":"refs/heads/main","pusher":{"name":"alice"},"head_commit":{"timestamp":"yesterday"}}`
		_, err := n.Normalize("push", []byte(payload))
		assertFields(t, err, []string{"head_commit.timestamp"})

		var verr *webhook.ValidationError
		errors.As(err, &verr)
		if verr.Problems[0].Reason != webhook.ReasonInvalid {
			t.Errorf("expected reason %q, got %q", webhook.ReasonInvalid, verr.Problems[0].Reason)
		}
	})

	t.Run("Wrong field type", func(t *testing.T) {
		payload := `{"ref":"refs/heads/main","pusher":{"name":42},"head_commit":{"timestamp":"2024-01-01T00:00:00Z"}}`
		_, err := n.Normalize("push", []byte(payload))
		assertFields(t, err, []string{"pusher.name"})
	})

	t.Run("Body is not an object", func(t *testing.T) {
		for _, body := range []string{``, `[]`, `"push"`, `{not json`} {
			_, err := n.Normalize("push", []byte(body))
			assertFields(t, err, []string{"payload"})
		}
	})
}

func TestNormalizePullRequest(t *testing.T) {
	n := newNormalizer()

	const prTemplate = `{
		"action": %q,
		"pull_request": {
			"id": 1001,
			"user": {"login": "bob"},
			"head": {"ref": "feature"},
			"base": {"ref": "main"},
			"merged": %t,
			"created_at": "2024-01-15T09:30:00Z",
			"merged_at": %s
		}
	}`

	t.Run("Closed and merged is MERGE", func(t *testing.T) {
		payload := sprintf(prTemplate, "closed", true, `"2024-02-01T10:00:00Z"`)
		got, err := n.Normalize("pull_request", []byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := model.Action{
			RequestID:  "1001",
			Author:     "bob",
			Kind:       model.ActionMerge,
			FromBranch: "feature",
			ToBranch:   "main",
			Timestamp:  time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	nonMerge := []struct {
		name   string
		action string
		merged bool
	}{
		{"Opened", "opened", false},
		{"Synchronize", "synchronize", false},
		{"Reopened", "reopened", false},
		{"Closed without merge", "closed", false},
		{"Edited after merge", "edited", true},
	}
	for _, tt := range nonMerge {
		t.Run(tt.name+" is PULL_REQUEST", func(t *testing.T) {
			payload := sprintf(prTemplate, tt.action, tt.merged, `null`)
			got, err := n.Normalize("pull_request", []byte(payload))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind != model.ActionPullRequest {
				t.Errorf("expected PULL_REQUEST, got %s", got.Kind)
			}
			if !got.Timestamp.Equal(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)) {
				t.Errorf("expected created_at timestamp, got %v", got.Timestamp)
			}
			if got.FromBranch != "feature" || got.ToBranch != "main" {
				t.Errorf("unexpected branches %q -> %q", got.FromBranch, got.ToBranch)
			}
		})
	}

	t.Run("Merged without merged_at", func(t *testing.T) {
		payload := sprintf(prTemplate, "closed", true, `null`)
		_, err := n.Normalize("pull_request", []byte(payload))
		assertFields(t, err, []string{"pull_request.merged_at"})
	})

	t.Run("Missing head ref", func(t *testing.T) {
		payload := `{"action":"opened","pull_request":{"id":1,"user":{"login":"bob"},"base":{"ref":"main"},"created_at":"2024-01-15T09:30:00Z"}}`
		_, err := n.Normalize("pull_request", []byte(payload))
		assertFields(t, err, []string{"pull_request.head.ref"})
	})

	t.Run("Missing everything", func(t *testing.T) {
		_, err := n.Normalize("pull_request", []byte(`{"action":"opened"}`))
		assertFields(t, err, []string{
			"pull_request.user.login",
			"pull_request.head.ref",
			"pull_request.base.ref",
			"pull_request.created_at",
		})
	})

	t.Run("Bad created_at", func(t *testing.T) {
		payload := `{"action":"opened","pull_request":{"id":1,"user":{"login":"bob"},"head":{"ref":"f"},"base":{"ref":"main"},"created_at":"15/01/2024"}}`
		_, err := n.Normalize("pull_request", []byte(payload))
		assertFields(t, err, []string{"pull_request.created_at"})
	})

	t.Run("Request id forms", func(t *testing.T) {
		ids := map[string]string{
			`1001`:             "1001",
			`"PR_kwDOabc"`:     "PR_kwDOabc",
			`null`:             "",
			`9007199254740993`: "9007199254740993",
		}
		for raw, want := range ids {
			payload := `{"action":"opened","pull_request":{"id":` + raw + `,"user":{"login":"bob"},"head":{"ref":"f"},"base":{"ref":"main"},"created_at":"2024-01-15T09:30:00Z"}}`
			got, err := n.Normalize("pull_request", []byte(payload))
			if err != nil {
				t.Fatalf("id %s: unexpected error: %v", raw, err)
			}
			if got.RequestID != want {
				t.Errorf("id %s: expected %q, got %q", raw, want, got.RequestID)
			}
		}
	})
}

func TestNormalizeUnsupportedKind(t *testing.T) {
	n := newNormalizer()

	for _, kind := range []string{"issues", "", "Push", "ping", "merge_request"} {
		_, err := n.Normalize(kind, []byte(`{}`))
		if !errors.Is(err, webhook.ErrUnsupportedEventKind) {
			t.Errorf("kind %q: expected ErrUnsupportedEventKind, got %v", kind, err)
		}
		var verr *webhook.ValidationError
		if errors.As(err, &verr) {
			t.Errorf("kind %q: unsupported kind must not be a ValidationError", kind)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &webhook.ValidationError{
		Kind: "push",
		Problems: []webhook.FieldProblem{
			{Field: "pusher.name", Reason: webhook.ReasonMissing},
			{Field: "head_commit.timestamp", Reason: webhook.ReasonInvalid},
		},
	}
	want := "invalid push event: missing pusher.name, invalid head_commit.timestamp"
	if verr.Error() != want {
		t.Errorf("expected %q, got %q", want, verr.Error())
	}
}

func assertFields(t *testing.T, err error, want []string) {
	t.Helper()
	var verr *webhook.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !reflect.DeepEqual(verr.Fields(), want) {
		t.Errorf("expected fields %v, got %v", want, verr.Fields())
	}
}
