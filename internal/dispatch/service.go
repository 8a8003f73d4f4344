// Package dispatch triggers the RunSync workflow and lists its recent runs.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	rserr "github.com/lxkasmehl/runsync-dispatch/internal/errors"
	"github.com/lxkasmehl/runsync-dispatch/internal/github"
)

// TokenResolver finds a bearer token before each API call.
type TokenResolver interface {
	Resolve(ctx context.Context) (string, bool)
}

// API is the subset of github.Client the service calls.
type API interface {
	DispatchWorkflow(ctx context.Context, token, workflowFile string, req github.DispatchRequest) error
	ListRuns(ctx context.Context, token string, perPage int) ([]github.WorkflowRun, error)
}

// Target names the workflow to dispatch and where its runs are shown.
type Target struct {
	Owner    string
	Repo     string
	Workflow string
	Ref      string
	WebURL   string
	PerPage  int
}

// ActionsURL is the repository's Actions page.
func (t Target) ActionsURL() string {
	return fmt.Sprintf("%s/%s/%s/actions", t.webURL(), t.Owner, t.Repo)
}

// WorkflowURL is the page of the dispatched workflow.
func (t Target) WorkflowURL() string {
	return fmt.Sprintf("%s/workflows/%s", t.ActionsURL(), t.Workflow)
}

func (t Target) webURL() string {
	if t.WebURL == "" {
		return github.DefaultWebURL
	}

	return t.WebURL
}

// Result is a successful dispatch.
type Result struct {
	TaskType    string
	Message     string
	WorkflowURL string
}

// Service implements Trigger and ListRecentRuns.
type Service struct {
	tokens TokenResolver
	api    API
	target Target
	logger *slog.Logger
}

// NewService wires a Service. A nil logger uses slog.Default().
func NewService(tokens TokenResolver, api API, target Target, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	if target.Ref == "" {
		target.Ref = "main"
	}

	if target.PerPage <= 0 {
		target.PerPage = github.DefaultPerPage
	}

	return &Service{tokens: tokens, api: api, target: target, logger: logger}
}

// Target returns the configured dispatch target.
func (s *Service) Target() Target {
	return s.target
}

// Trigger dispatches the workflow once with taskType and password as inputs, passed verbatim.
// On failure the error is a CredentialMissingError (no request was made), a RemoteRejectionError
// or a NetworkError. There is no retry: calling Trigger twice dispatches twice.
func (s *Service) Trigger(ctx context.Context, taskType, password string) (*Result, error) {
	return s.TriggerWith(ctx, taskType, func(context.Context) (string, error) {
		return password, nil
	})
}

// PasswordFunc supplies the password input once a token is in hand.
type PasswordFunc func(ctx context.Context) (string, error)

// TriggerWith is Trigger with the password looked up only after a token was resolved,
// so a missing token never leads to a password dialog.
func (s *Service) TriggerWith(ctx context.Context, taskType string, passwordFn PasswordFunc) (*Result, error) {
	token, ok := s.tokens.Resolve(ctx)
	if !ok {
		return nil, &rserr.CredentialMissingError{Operation: "start workflow"}
	}

	password, err := passwordFn(ctx)
	if err != nil {
		return nil, err
	}

	req := github.DispatchRequest{
		Ref: s.target.Ref,
		Inputs: github.DispatchInputs{
			TaskType: taskType,
			Password: password,
		},
	}

	s.logger.Debug("dispatching workflow", "workflow", s.target.Workflow, "ref", s.target.Ref, "task_type", taskType)

	if err := s.api.DispatchWorkflow(ctx, token, s.target.Workflow, req); err != nil {
		s.logger.Debug("dispatch failed", "workflow", s.target.Workflow, "error", err)
		return nil, err
	}

	return &Result{
		TaskType:    taskType,
		Message:     fmt.Sprintf("Workflow %q started successfully!", taskType),
		WorkflowURL: s.target.ActionsURL(),
	}, nil
}

// ListRecentRuns returns the most recent runs in the order GitHub reports them.
// Failures other than a missing token are reported as a generic RunsError; the cause
// is logged at debug level and kept behind Unwrap.
func (s *Service) ListRecentRuns(ctx context.Context) ([]github.WorkflowRun, error) {
	token, ok := s.tokens.Resolve(ctx)
	if !ok {
		return nil, &rserr.CredentialMissingError{Operation: "list workflow runs"}
	}

	runs, err := s.api.ListRuns(ctx, token, s.target.PerPage)
	if err != nil {
		s.logger.Debug("listing runs failed", "error", err)

		var runsErr *rserr.RunsError
		if errors.As(err, &runsErr) {
			return nil, err
		}

		return nil, &rserr.RunsError{Cause: err}
	}

	return runs, nil
}
