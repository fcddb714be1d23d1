package app

import (
	"log"
	"path"

	"github.com/justyntemme/arbor/internal/debug"
	"github.com/justyntemme/arbor/internal/fs"
	"github.com/justyntemme/arbor/internal/store"
	"github.com/justyntemme/arbor/internal/tree"
)

// startSeed asks the fs worker to scan dir so its layout can be mirrored
// below the root folder. An empty dir is a no-op.
func (o *Orchestrator) startSeed(dir string) {
	dir = expandPath(dir)
	if dir == "" {
		return
	}
	if exists, isDir := validatePath(dir); !exists || !isDir {
		log.Printf("Seed: %s is not a directory", dir)
		return
	}

	o.seedGen++
	debug.Log(debug.APP, "Seed: scanning %q gen=%d", dir, o.seedGen)
	o.fs.RequestChan <- fs.Request{
		Op:           fs.ScanTree,
		Path:         dir,
		MaxDepth:     o.cfg.Tree.SeedDepth,
		MaxEntries:   o.cfg.Tree.SeedMaxEntries,
		ShowDotfiles: o.cfg.Tree.ShowDotfiles,
		Gen:          o.seedGen,
	}
}

func (o *Orchestrator) handleFSResponse(resp fs.Response) {
	if resp.Gen != o.seedGen {
		debug.Log(debug.APP, "Seed: dropping stale response gen=%d (current %d)", resp.Gen, o.seedGen)
		return
	}
	if resp.Err != nil {
		log.Printf("FS Error: %v", resp.Err)
		return
	}
	if resp.Cancelled {
		return
	}

	n := importEntries(o.tree, o.tree.Root().ID, resp.Entries)
	if resp.Truncated {
		log.Printf("Seed: stopped after %d entries of %s", o.cfg.Tree.SeedMaxEntries, resp.Path)
	}
	debug.Log(debug.APP, "Seed: imported %d of %d entries from %q", n, len(resp.Entries), resp.Path)

	o.saveSetting(store.KeyLastSeed, resp.Path)
	o.refreshState()
	o.invalidate()
}

// importEntries adds scanned entries below parentID. Entries must list every
// directory before its contents, as fs.SortEntries does. Returns how many
// items were added.
func importEntries(t *tree.Store, parentID string, entries []fs.Entry) int {
	ids := map[string]string{".": parentID}
	added := 0
	for _, e := range entries {
		pid, ok := ids[path.Dir(e.RelPath)]
		if !ok {
			debug.Log(debug.APP, "Seed: no parent for %q", e.RelPath)
			continue
		}

		var (
			item tree.Item
			err  error
		)
		if e.IsDir {
			item, err = t.AddFolder(pid, e.Name)
		} else {
			item, err = t.AddFile(pid, e.Name)
		}
		if err != nil {
			debug.Log(debug.APP, "Seed: skipping %q: %v", e.RelPath, err)
			continue
		}
		if e.IsDir {
			ids[e.RelPath] = item.ID
		}
		added++
	}
	return added
}
