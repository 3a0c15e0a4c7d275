// Package tree transforms a directory of project templates into a project:
// template files are rendered, files with placeholders in their names are
// moved to their rendered location.
package tree

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"

	"github.com/pinit-dev/pinit/cli/templates"
)

// Action is a transformation applied to an entry.
type Action int

const (
	// NoOp leaves the entry in place.
	NoOp Action = iota
	// Render renders the template file content to the destination and removes the source.
	Render
	// Move moves the entry to the destination.
	Move
)

// String returns the action name.
func (action Action) String() string {
	switch action {
	case Render:
		return "render"
	case Move:
		return "move"
	default:
		return "none"
	}
}

// ConflictPolicy defines what to do if a destination exists and was not
// created by the current pass.
type ConflictPolicy string

const (
	// ConflictOverwrite silently replaces the existing destination.
	ConflictOverwrite ConflictPolicy = "overwrite"
	// ConflictFail aborts the pass with DestinationExistsError.
	ConflictFail ConflictPolicy = "fail"
)

// Plan is the action computed for an entry before any modification.
type Plan struct {
	Entry Entry
	// Destination is the rendered path relative to the root.
	Destination string
	Action      Action
}

// Recorder receives every applied plan.
type Recorder interface {
	Record(plan Plan)
}

// Opts describes the transformer options.
type Opts struct {
	// Engine is a template engine for file names and contents.
	Engine templates.TemplateEngine
	// Data is a properties mapping. It is never modified.
	Data any
	// TemplateSuffix marks the template files. DefaultTemplateSuffix is used if empty.
	TemplateSuffix string
	// Ignore is a set of ignored names.
	Ignore IgnoreSet
	// OnConflict is a destination conflict policy. ConflictOverwrite is used if empty.
	OnConflict ConflictPolicy
	// Recorder is notified about applied actions, may be nil.
	Recorder Recorder
}

// Result is a transformation pass summary.
type Result struct {
	Rendered  int
	Moved     int
	Unchanged int
	// RemovedDirs are the placeholder directories removed after the pass.
	RemovedDirs []string
}

// Transformer transforms a project template tree in place.
type Transformer struct {
	root     string
	opts     Opts
	renderer PathRenderer
}

// NewTransformer creates a transformer of the tree under root.
func NewTransformer(root string, opts Opts) (*Transformer, error) {
	if opts.Engine == nil {
		opts.Engine = templates.NewDefaultEngine()
	}
	if opts.TemplateSuffix == "" {
		opts.TemplateSuffix = DefaultTemplateSuffix
	}
	if opts.Ignore == nil {
		opts.Ignore = NewIgnoreSet()
	}
	switch opts.OnConflict {
	case "":
		opts.OnConflict = ConflictOverwrite
	case ConflictOverwrite, ConflictFail:
	default:
		return nil, fmt.Errorf("unknown conflict policy %q", opts.OnConflict)
	}

	return &Transformer{
		root:     root,
		opts:     opts,
		renderer: PathRenderer{Engine: opts.Engine, Data: opts.Data},
	}, nil
}

// Plan computes the action for the entry. The filesystem is not modified.
func (t *Transformer) Plan(entry Entry) (Plan, error) {
	rendered, err := t.renderer.RenderPath(entry.Path)
	if err != nil {
		return Plan{}, err
	}

	isTemplate := strings.HasSuffix(rendered, t.opts.TemplateSuffix)
	if isTemplate {
		rendered = strings.TrimSuffix(rendered, t.opts.TemplateSuffix)
		if base := filepath.Base(filepath.FromSlash(rendered)); base == "" ||
			strings.HasSuffix(rendered, "/") || base == "." {
			return Plan{}, fmt.Errorf("template %q has an empty destination name", entry.Path)
		}
	}

	dst, err := destinationPath(rendered)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{Entry: entry, Destination: dst}
	switch {
	case isTemplate:
		plan.Action = Render
	case dst != filepath.Clean(entry.Path):
		plan.Action = Move
	default:
		plan.Action = NoOp
	}
	return plan, nil
}

// PlanTree computes the actions for the whole tree without modifying it.
func (t *Transformer) PlanTree() ([]Plan, error) {
	snapshot, err := Walk(t.root, t.opts.Ignore, t.opts.TemplateSuffix)
	if err != nil {
		return nil, err
	}

	plans := make([]Plan, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		plan, err := t.Plan(entry)
		if err != nil {
			return nil, &TransformFailedError{Path: entry.Path, Err: err}
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Run transforms the tree. Entries are processed one by one: the first error
// aborts the pass and the entries processed before it stay transformed.
// Cancellation of ctx is checked between entries.
func (t *Transformer) Run(ctx context.Context) (Result, error) {
	var result Result

	snapshot, err := Walk(t.root, t.opts.Ignore, t.opts.TemplateSuffix)
	if err != nil {
		return result, err
	}

	// Destinations written by this pass, they may be overwritten by later entries
	// regardless of the conflict policy.
	produced := make(map[string]struct{})
	for _, entry := range snapshot.Entries {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("transformation is interrupted: %w", err)
		}

		plan, err := t.Plan(entry)
		if err != nil {
			return result, &TransformFailedError{Path: entry.Path, Err: err}
		}
		if err = t.apply(plan, produced); err != nil {
			return result, &TransformFailedError{Path: entry.Path, Err: err}
		}

		switch plan.Action {
		case Render:
			result.Rendered++
		case Move:
			result.Moved++
		default:
			result.Unchanged++
		}
		if plan.Action != NoOp && t.opts.Recorder != nil {
			t.opts.Recorder.Record(plan)
		}
	}

	result.RemovedDirs = t.removePlaceholderDirs(snapshot.Dirs)
	return result, nil
}

// apply performs the planned action: destination directory is created first,
// the source is removed only after the destination is written.
func (t *Transformer) apply(plan Plan, produced map[string]struct{}) error {
	if plan.Action == NoOp {
		log.Debugf("Keeping %s", plan.Entry.Path)
		return nil
	}

	src := filepath.Join(t.root, plan.Entry.Path)
	dst := filepath.Join(t.root, plan.Destination)

	if err := t.checkConflict(plan.Destination, dst, produced); err != nil {
		return err
	}
	if err := ensureDir(filepath.Dir(dst)); err != nil {
		return err
	}

	switch plan.Action {
	case Render:
		log.Debugf("Rendering %s to %s", plan.Entry.Path, plan.Destination)
		if err := renderFile(t.opts.Engine, src, dst, t.opts.Data); err != nil {
			return err
		}
		if err := os.Remove(src); err != nil {
			return &FilesystemError{Op: "remove", Path: src, Err: err}
		}
	case Move:
		log.Debugf("Moving %s to %s", plan.Entry.Path, plan.Destination)
		if err := moveFile(src, dst); err != nil {
			return err
		}
	}
	produced[plan.Destination] = struct{}{}
	return nil
}

func (t *Transformer) checkConflict(relDst, dst string, produced map[string]struct{}) error {
	if _, err := os.Lstat(dst); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &FilesystemError{Op: "stat", Path: dst, Err: err}
	}
	if _, found := produced[relDst]; found {
		return nil
	}
	if t.opts.OnConflict == ConflictFail {
		return &DestinationExistsError{Destination: relDst}
	}
	log.Warnf("Overwriting existing %s", relDst)
	return nil
}

// removePlaceholderDirs removes the directories that have a placeholder in the
// name and became empty after their content was moved. Errors are logged only.
func (t *Transformer) removePlaceholderDirs(dirs []Entry) []string {
	sorted := make([]Entry, len(dirs))
	copy(sorted, dirs)
	// Children first.
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.Count(sorted[i].Path, string(filepath.Separator)) >
			strings.Count(sorted[j].Path, string(filepath.Separator))
	})

	var removed []string
	for _, dir := range sorted {
		rendered, err := t.renderer.RenderPath(dir.Path)
		if err != nil {
			log.Warnf("Failed to render directory name %s: %s", dir.Path, err)
			continue
		}
		if filepath.Clean(filepath.FromSlash(rendered)) == filepath.Clean(dir.Path) {
			continue
		}

		fullPath := filepath.Join(t.root, dir.Path)
		entries, err := os.ReadDir(fullPath)
		if err != nil || len(entries) != 0 {
			continue
		}
		log.Debugf("Removing empty directory %s", dir.Path)
		if err = os.Remove(fullPath); err != nil {
			log.Warnf("Failed to remove %s: %s", fullPath, err)
			continue
		}
		removed = append(removed, dir.Path)
	}
	return removed
}
