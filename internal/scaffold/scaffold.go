package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/springpress/create-springpress-app/internal/manifest"
	"github.com/springpress/create-springpress-app/internal/pkgname"
	"github.com/springpress/create-springpress-app/internal/platform"
	"github.com/springpress/create-springpress-app/internal/prompt"
)

// Question is asked when no project name was supplied.
const Question = "What is your project named?"

// Stage identifies how far a run has progressed.
type Stage int

const (
	StageStart Stage = iota
	StageNameResolved
	StageNameValidated
	StageDirectoryCreated
	StageManifestWritten
	StageSuccess
)

var stageNames = [...]string{
	StageStart:            "start",
	StageNameResolved:     "name-resolved",
	StageNameValidated:    "name-validated",
	StageDirectoryCreated: "directory-created",
	StageManifestWritten:  "manifest-written",
	StageSuccess:          "success",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// NameValidator decides whether a project name is acceptable.
type NameValidator interface {
	Validate(name string) pkgname.Result
}

// ValidatorFunc adapts a plain function to NameValidator.
type ValidatorFunc func(name string) pkgname.Result

// Validate calls f(name).
func (f ValidatorFunc) Validate(name string) pkgname.Result { return f(name) }

// Target is the resolved project location.
type Target struct {
	Root    string // Absolute directory path
	AppName string // Final path segment of Root
}

// Result holds the outcome of a successful run.
type Result struct {
	Target
	ManifestPath string
}

// Scaffolder creates project directories.
type Scaffolder struct {
	validator NameValidator
	prompter  prompt.Prompter
	logger    *slog.Logger
	observer  func(Stage, Target)
	workDir   string
	version   string
	private   bool
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithValidator replaces the npm naming rules.
func WithValidator(v NameValidator) Option {
	return func(s *Scaffolder) { s.validator = v }
}

// WithPrompter sets the source used when no name is supplied.
func WithPrompter(p prompt.Prompter) Option {
	return func(s *Scaffolder) { s.prompter = p }
}

// WithLogger sets the logger for stage transitions.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scaffolder) { s.logger = l }
}

// WithObserver registers fn to be called each time a stage is reached.
func WithObserver(fn func(Stage, Target)) Option {
	return func(s *Scaffolder) { s.observer = fn }
}

// WithWorkingDir resolves relative names against dir instead of the
// process working directory.
func WithWorkingDir(dir string) Option {
	return func(s *Scaffolder) { s.workDir = dir }
}

// WithManifestDefaults overrides the version and private flag written to
// new manifests.
func WithManifestDefaults(version string, private bool) Option {
	return func(s *Scaffolder) {
		s.version = version
		s.private = private
	}
}

// New returns a Scaffolder using the npm naming rules and no prompter.
func New(opts ...Option) *Scaffolder {
	s := &Scaffolder{
		validator: pkgname.Validator{},
		logger:    slog.New(slog.DiscardHandler),
		version:   manifest.DefaultVersion,
		private:   manifest.DefaultPrivate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create runs every stage for rawName, prompting when it is empty.
func (s *Scaffolder) Create(rawName string) (*Result, error) {
	s.reach(StageStart, Target{})

	target, err := s.ResolveTarget(rawName)
	if err != nil {
		return nil, err
	}
	s.reach(StageNameResolved, target)

	if _, err := s.ValidateName(target.AppName); err != nil {
		return nil, err
	}
	pkg, err := s.buildManifest(target.AppName)
	if err != nil {
		return nil, err
	}
	s.reach(StageNameValidated, target)

	if err := s.EnsureDirectory(target.Root); err != nil {
		return nil, err
	}
	s.reach(StageDirectoryCreated, target)

	path, err := s.writeManifest(target.Root, pkg)
	if err != nil {
		return nil, err
	}
	s.reach(StageManifestWritten, target)

	s.reach(StageSuccess, target)
	return &Result{Target: target, ManifestPath: path}, nil
}

// ResolveTarget turns rawName into an absolute directory. An empty rawName
// asks the prompter once.
func (s *Scaffolder) ResolveTarget(rawName string) (Target, error) {
	name := rawName
	if name == "" {
		if s.prompter == nil {
			return Target{}, ErrNoName
		}
		answer, err := s.prompter.Ask(Question)
		if errors.Is(err, prompt.ErrNoInput) {
			return Target{}, ErrNoName
		}
		if err != nil {
			return Target{}, fmt.Errorf("prompting for project name: %w", err)
		}
		if strings.TrimSpace(answer) == "" {
			return Target{}, ErrNoName
		}
		name = answer
	}

	root, err := s.absolute(name)
	if err != nil {
		return Target{}, fmt.Errorf("resolving %q: %w", name, err)
	}
	return Target{Root: root, AppName: filepath.Base(root)}, nil
}

func (s *Scaffolder) absolute(name string) (string, error) {
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	if s.workDir != "" {
		return filepath.Join(s.workDir, name), nil
	}
	return filepath.Abs(name)
}

// ValidateName checks appName against the configured rules. The verdict is
// returned either way; the error is an *InvalidNameError when the name is
// not acceptable for a new package.
func (s *Scaffolder) ValidateName(appName string) (pkgname.Result, error) {
	verdict := s.validator.Validate(appName)
	if !verdict.ValidForNewPackages {
		s.logger.Debug("name rejected", "name", appName,
			"errors", len(verdict.Errors), "warnings", len(verdict.Warnings))
		return verdict, &InvalidNameError{
			Name:     appName,
			Errors:   verdict.Errors,
			Warnings: verdict.Warnings,
		}
	}
	return verdict, nil
}

// EnsureDirectory creates path, refusing if anything already exists there.
// Parents are not created.
func (s *Scaffolder) EnsureDirectory(path string) error {
	exists, err := platform.Exists(path)
	if err != nil {
		return &IOError{Op: "stat", Path: path, Err: err}
	}
	if exists {
		return &AlreadyExistsError{Path: path}
	}

	if err := platform.Mkdir(path, platform.DirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &AlreadyExistsError{Path: path}
		}
		return &IOError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// WriteManifest writes package.json for appName into root and returns its
// path.
func (s *Scaffolder) WriteManifest(root, appName string) (string, error) {
	pkg, err := s.buildManifest(appName)
	if err != nil {
		return "", err
	}
	return s.writeManifest(root, pkg)
}

func (s *Scaffolder) buildManifest(appName string) (*manifest.Package, error) {
	pkg, err := manifest.New(appName, s.version, s.private)
	if err != nil {
		return nil, fmt.Errorf("building manifest: %w", err)
	}

	check, err := manifest.ValidatePackage(pkg)
	if err != nil {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}
	if !check.Valid {
		msgs := make([]string, 0, len(check.Issues))
		for _, issue := range check.Issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("generated manifest is invalid: %s", strings.Join(msgs, "; "))
	}
	return pkg, nil
}

func (s *Scaffolder) writeManifest(root string, pkg *manifest.Package) (string, error) {
	data, err := manifest.Encode(pkg)
	if err != nil {
		return "", err
	}

	path := filepath.Join(root, manifest.FileName)
	if err := platform.WriteFile(path, data, platform.FilePerm); err != nil {
		return "", &IOError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}

func (s *Scaffolder) reach(stage Stage, t Target) {
	s.logger.Debug("stage reached", "stage", stage.String(), "root", t.Root)
	if s.observer != nil {
		s.observer(stage, t)
	}
}
