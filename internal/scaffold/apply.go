package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	oerrors "github.com/pubforge/cli/internal/errors"
	"github.com/pubforge/cli/internal/materialize"
	"github.com/pubforge/cli/internal/output"
	"github.com/pubforge/cli/internal/template"
)

// applyWorkers bounds the file-writing pool.
const applyWorkers = 8

// Render expands an entry's template into file content.
func Render(e Entry) ([]byte, error) {
	raw, err := Content(e.Template)
	if err != nil {
		return nil, err
	}
	return []byte(template.Expand(raw, e.Bindings)), nil
}

// Apply materializes a plan under root. Directories are created first,
// sequentially and in plan order, so every file's parent exists before
// the file writes fan out across a worker pool. The context cancels
// remaining writes; files already written stay in place (no rollback).
func Apply(ctx context.Context, m materialize.Materializer, root string, entries []Entry, overwrite bool) error {
	if err := m.EnsureDir(root); err != nil {
		return err
	}

	for _, e := range entries {
		if !e.IsDir {
			continue
		}
		if err := m.EnsureDir(filepath.Join(root, filepath.FromSlash(e.RelPath))); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(applyWorkers)

	for _, e := range entries {
		if e.IsDir {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			content, err := Render(e)
			if err != nil {
				return err
			}

			target := filepath.Join(root, filepath.FromSlash(e.RelPath))

			// Nested plans may place files in directories that are not
			// their own plan entries (e.g. lib/ for web stubs).
			if err := m.EnsureDir(filepath.Dir(target)); err != nil {
				return err
			}

			if err := m.WriteFile(target, content, overwrite); err != nil {
				return err
			}

			output.Debug("created file", "path", e.RelPath)
			return nil
		})
	}

	return g.Wait()
}

// CheckDestination verifies root may receive a new project: it must be
// absent, an empty directory, or force must be set. Runs before any
// write so a refusal leaves no partial state.
func CheckDestination(root string, force bool) error {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return oerrors.NewIOError("checking destination", root, err)
	}

	if !info.IsDir() {
		return oerrors.NewAlreadyExistsError(
			fmt.Sprintf("%s exists and is not a directory", root),
			root,
			"Choose a different --output path.",
		)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return oerrors.NewIOError("reading destination", root, err)
	}

	if len(entries) > 0 && !force {
		return oerrors.NewAlreadyExistsError(
			fmt.Sprintf("directory %s is not empty", root),
			root,
			"Pass --force to overwrite existing files.",
		)
	}

	return nil
}

// Descriptions returns relative path to description for the created
// file tree. Directory entries are implied by the file paths.
func Descriptions(entries []Entry) map[string]string {
	files := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		files[e.RelPath] = e.Description
	}
	return files
}
