package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lxkasmehl/runsync-dispatch/internal/config"
	"github.com/lxkasmehl/runsync-dispatch/internal/credential"
	"github.com/lxkasmehl/runsync-dispatch/internal/dispatch"
	"github.com/lxkasmehl/runsync-dispatch/internal/github"
	"github.com/lxkasmehl/runsync-dispatch/internal/history"
	"github.com/lxkasmehl/runsync-dispatch/internal/kv"
	"github.com/lxkasmehl/runsync-dispatch/internal/prompt"
	"github.com/lxkasmehl/runsync-dispatch/internal/validation"
	"github.com/lxkasmehl/runsync-dispatch/internal/workflow"
)

// app holds the state shared by commands. Collaborators are built on first use
// so that commands which never touch credentials do not open storage.
type app struct {
	opts       Options
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger

	durable   kv.Store
	session   kv.Store
	closers   []func() error
	tokens    *credential.TokenStore
	passwords *credential.PasswordStore
}

func newApp(opts Options) *app {
	opts = opts.withDefaults()

	if opts.Prompter == nil || opts.Alerter == nil {
		term := prompt.New()
		if opts.Prompter == nil {
			opts.Prompter = term
		}

		if opts.Alerter == nil {
			opts.Alerter = term
		}
	}

	return &app{opts: opts, logger: slog.Default()}
}

func (a *app) setup() error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}

	logger, warning, err := setupLogger(a.opts.Stderr, a.logLevel, cfg.LogLevel)
	if err != nil {
		return err
	}

	if warning != "" {
		fmt.Fprintln(a.opts.Stderr, warning)
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("loaded config", "path", cfg.Path, "repository", cfg.Repository, "workflow", cfg.Workflow)

	return nil
}

func (a *app) close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.Warn("failed to close storage", "error", err)
		}
	}
}

// stores opens the durable and session credential stores for the configured backend.
// Stores supplied through Options take precedence.
func (a *app) stores() (kv.Store, kv.Store, error) {
	if a.durable != nil {
		return a.durable, a.session, nil
	}

	durable, session := a.opts.Durable, a.opts.Session
	storage := a.cfg.Storage

	if session == nil {
		if storage.Backend == config.BackendMemory {
			session = kv.NewMemoryStore()
		} else {
			path := storage.SessionPath
			if path == "" {
				path = kv.SessionPath()
			}

			session = kv.NewFileStore(path)
		}
	}

	if durable == nil {
		switch storage.Backend {
		case config.BackendMemory:
			durable = kv.NewMemoryStore()
		case config.BackendSQLite:
			path := storage.Path
			if path == "" {
				path = kv.DurablePath("runsync.db")
			}

			db, err := kv.OpenSQLite(path)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to open credential database: %w", err)
			}

			a.closers = append(a.closers, db.Close)
			durable = db
		default:
			path := storage.Path
			if path == "" {
				path = kv.DurablePath("credentials.json")
			}

			durable = kv.NewFileStore(path)
		}
	}

	a.logger.Debug("opened credential storage", "backend", storage.Backend)
	a.durable, a.session = durable, session

	return durable, session, nil
}

func (a *app) tokenStore() (*credential.TokenStore, error) {
	if a.tokens != nil {
		return a.tokens, nil
	}

	durable, session, err := a.stores()
	if err != nil {
		return nil, err
	}

	sources := make([]credential.Source, 0, len(a.cfg.TokenSources))

	for _, name := range a.cfg.TokenSources {
		switch name {
		case credential.SourceDurable:
			sources = append(sources, credential.FromStore(name, durable, credential.TokenKey))
		case credential.SourceSession:
			sources = append(sources, credential.FromStore(name, session, credential.TokenKey))
		case credential.SourceGH:
			sources = append(sources, credential.FromGH(a.cfg.Host))
		case credential.SourcePrompt:
			sources = append(sources, credential.FromPrompt(a.opts.Prompter, credential.TokenDialog))
		}
	}

	a.tokens = credential.NewTokenStore(credential.TokenStoreOptions{
		Durable: durable,
		Session: session,
		Sources: sources,
		Logger:  a.logger,
	})

	return a.tokens, nil
}

func (a *app) passwordStore() (*credential.PasswordStore, error) {
	if a.passwords != nil {
		return a.passwords, nil
	}

	durable, _, err := a.stores()
	if err != nil {
		return nil, err
	}

	a.passwords = credential.NewPasswordStore(durable, a.opts.Prompter, a.logger)

	return a.passwords, nil
}

// resolvePassword returns the --password flag when given, else the saved or prompted password.
func (a *app) resolvePassword(ctx context.Context, flagSet bool, flagValue string) (string, error) {
	if flagSet {
		return flagValue, nil
	}

	passwords, err := a.passwordStore()
	if err != nil {
		return "", err
	}

	password, ok := passwords.Resolve(ctx)
	if !ok {
		a.logger.Warn("no password available; dispatching with an empty password")
	}

	return password, nil
}

func (a *app) repository() (string, string, error) {
	return a.cfg.ResolveRepository(func() (string, error) {
		return a.opts.DetectRepo(a.cfg.Host)
	})
}

func (a *app) target() (dispatch.Target, error) {
	owner, repo, err := a.repository()
	if err != nil {
		return dispatch.Target{}, err
	}

	return dispatch.Target{
		Owner:    owner,
		Repo:     repo,
		Workflow: a.cfg.Workflow,
		Ref:      a.cfg.Ref,
		WebURL:   a.cfg.WebURL,
		PerPage:  a.cfg.RunsPerPage,
	}, nil
}

func (a *app) service() (*dispatch.Service, error) {
	target, err := a.target()
	if err != nil {
		return nil, err
	}

	tokens, err := a.tokenStore()
	if err != nil {
		return nil, err
	}

	client, err := github.NewClient(github.Options{
		Owner:     target.Owner,
		Repo:      target.Repo,
		APIURL:    a.cfg.APIURL,
		Timeout:   a.cfg.HTTPTimeout,
		Transport: a.opts.Transport,
	})
	if err != nil {
		return nil, err
	}

	return dispatch.NewService(tokens, client, target, a.logger), nil
}

// localWorkflow reads the dispatched workflow from workflow_dir (or the working directory).
// A missing or unreadable file yields nil.
func (a *app) localWorkflow() *workflow.WorkflowFile {
	dir := a.cfg.WorkflowDir
	if dir == "" {
		dir = a.opts.WorkDir
	}

	wf, err := workflow.Find(dir, a.cfg.Workflow)
	if err != nil {
		a.logger.Debug("ignoring local workflow file", "dir", dir, "error", err)
		return nil
	}

	return wf
}

// checkTaskType warns when a local workflow declares task types and taskType is not one of them.
func (a *app) checkTaskType(taskType string) {
	check := validation.CheckTaskType(taskType, a.localWorkflow())
	if check.Status != validation.StatusUnknown {
		return
	}

	msg := fmt.Sprintf("warning: task type %q is not declared by %s", taskType, a.cfg.Workflow)
	if check.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", check.Suggestion)
	}

	fmt.Fprintln(a.opts.Stderr, msg)
}

func (a *app) historyPath() string {
	if a.opts.HistoryPath != "" {
		return a.opts.HistoryPath
	}

	return history.CachePath()
}

// recordDispatch remembers a successful dispatch. Failures are logged only.
func (a *app) recordDispatch(target dispatch.Target, taskType string) {
	path := a.historyPath()

	store, err := history.LoadFrom(path)
	if err != nil {
		a.logger.Warn("failed to load history", "error", err)
		return
	}

	store.Record(target.Owner+"/"+target.Repo, target.Workflow, target.Ref, taskType)

	if err := store.SaveTo(path); err != nil {
		a.logger.Warn("failed to save history", "error", err)
	}
}
