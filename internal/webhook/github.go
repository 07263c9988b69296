package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"repo-activity-feed/internal/model"
)

// Normalize maps one webhook delivery to an Action. eventKind is the
// X-GitHub-Event header value and payload the raw JSON body.
//
// It returns ErrUnsupportedEventKind for kinds other than push and
// pull_request, and *ValidationError when a required field is missing or a
// timestamp cannot be parsed.
func (n *Normalizer) Normalize(eventKind string, payload []byte) (model.Action, error) {
	switch model.EventKind(eventKind) {
	case model.EventPush:
		return n.normalizePush(payload)
	case model.EventPullRequest:
		return n.normalizePullRequest(payload)
	default:
		return model.Action{}, fmt.Errorf("%w: %q", ErrUnsupportedEventKind, eventKind)
	}
}

func (n *Normalizer) normalizePush(payload []byte) (model.Action, error) {
	verr := &ValidationError{Kind: string(model.EventPush)}

	var event pushPayload
	if !decode(payload, &event, verr) {
		return model.Action{}, verr
	}

	action := model.Action{
		RequestID: event.HeadCommit.ID,
		Author:    event.Pusher.Name,
		Kind:      model.ActionPush,
		ToBranch:  lastSegment(event.Ref),
	}
	action.Timestamp = n.parseTimestamp(event.HeadCommit.Timestamp, "head_commit.timestamp", verr)

	n.check(action, verr, map[string]string{
		"Author":    "pusher.name",
		"ToBranch":  "ref",
		"Timestamp": "head_commit.timestamp",
	})
	if !verr.empty() {
		return model.Action{}, verr
	}
	return action, nil
}

func (n *Normalizer) normalizePullRequest(payload []byte) (model.Action, error) {
	verr := &ValidationError{Kind: string(model.EventPullRequest)}

	var event pullRequestPayload
	if !decode(payload, &event, verr) {
		return model.Action{}, verr
	}
	pr := event.PullRequest

	action := model.Action{
		RequestID:  rawID(pr.ID),
		Author:     pr.User.Login,
		Kind:       model.ActionPullRequest,
		FromBranch: pr.Head.Ref,
		ToBranch:   pr.Base.Ref,
	}

	// Every non-merging transition (opened, synchronize, reopened, closed
	// without merge) is reported as PULL_REQUEST at its creation time.
	tsField, tsValue := "pull_request.created_at", pr.CreatedAt
	if event.Action == model.PullRequestActionClosed && pr.Merged {
		action.Kind = model.ActionMerge
		tsField, tsValue = "pull_request.merged_at", pr.MergedAt
	}
	action.Timestamp = n.parseTimestamp(tsValue, tsField, verr)

	n.check(action, verr, map[string]string{
		"Author":     "pull_request.user.login",
		"FromBranch": "pull_request.head.ref",
		"ToBranch":   "pull_request.base.ref",
		"Timestamp":  tsField,
	})
	if !verr.empty() {
		return model.Action{}, verr
	}
	return action, nil
}

// decode unmarshals payload into dst. Type mismatches on individual fields
// are recorded and decoding continues; a body that is not a JSON object
// fails outright.
func decode(payload []byte, dst any, verr *ValidationError) bool {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		verr.add("payload", ReasonInvalid)
		return false
	}

	err := json.Unmarshal(trimmed, dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		verr.add(typeErr.Field, ReasonInvalid)
		return true
	}

	verr.add("payload", ReasonInvalid)
	return false
}

// parseTimestamp converts value to UTC. An empty value is left for the
// required check; an unparsable one is recorded as invalid.
func (n *Normalizer) parseTimestamp(value, field string, verr *ValidationError) (ts time.Time) {
	if strings.TrimSpace(value) == "" {
		return ts
	}
	t, err := n.parser.Parse(value)
	if err != nil {
		verr.add(field, ReasonInvalid)
		return ts
	}
	return model.CanonicalTime(t)
}

// check runs struct validation on the normalized record and reports failures
// under their payload paths.
func (n *Normalizer) check(action model.Action, verr *ValidationError, paths map[string]string) {
	err := n.validate.Struct(action)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.add("payload", ReasonInvalid)
		return
	}
	for _, fe := range fieldErrs {
		path, ok := paths[fe.StructField()]
		if !ok {
			path = fe.StructField()
		}
		verr.add(path, ReasonMissing)
	}
}

// lastSegment returns the final "/"-separated part of ref: refs/heads/main → main.
func lastSegment(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// rawID renders a JSON number or string id as text. null and absent give "".
func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		if i, err := strconv.ParseInt(num.String(), 10, 64); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return num.String()
	}
	return string(raw)
}
