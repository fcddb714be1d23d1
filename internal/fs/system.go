package fs

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/justyntemme/arbor/internal/debug"
)

type OpType int

const (
	ScanTree OpType = iota
	CancelScan
)

type Request struct {
	Op           OpType
	Path         string
	MaxDepth     int  // Levels below Path to include (1 = direct children only)
	MaxEntries   int  // Stop after this many entries (0 = no limit)
	ShowDotfiles bool // Include names starting with "."
	Gen          int64
}

// Entry is one scanned path relative to the scan root.
type Entry struct {
	RelPath string // Slash separated, relative to the scan root
	Name    string
	IsDir   bool
	Depth   int // 1 for direct children of the root
}

type Response struct {
	Op        OpType
	Path      string
	Entries   []Entry
	Truncated bool // MaxEntries was hit
	Cancelled bool
	Err       error
	Gen       int64
}

type System struct {
	RequestChan  chan Request
	ResponseChan chan Response

	cancelMu   sync.Mutex
	cancelFunc context.CancelFunc
}

func NewSystem() *System {
	return &System{
		RequestChan:  make(chan Request, 10),
		ResponseChan: make(chan Response, 10),
	}
}

func (s *System) Start() {
	for req := range s.RequestChan {
		debug.Log(debug.FS, "Request: op=%d path=%q depth=%d gen=%d", req.Op, req.Path, req.MaxDepth, req.Gen)

		switch req.Op {
		case CancelScan:
			s.cancel()

		case ScanTree:
			s.cancel()
			ctx, cancel := context.WithCancel(context.Background())
			s.cancelMu.Lock()
			s.cancelFunc = cancel
			s.cancelMu.Unlock()

			// Scan in a goroutine so cancel requests are still processed
			go func(ctx context.Context, req Request) {
				resp := s.scanTree(ctx, req)
				resp.Gen = req.Gen
				debug.Log(debug.FS, "ScanTree response: path=%q entries=%d truncated=%v cancelled=%v err=%v",
					resp.Path, len(resp.Entries), resp.Truncated, resp.Cancelled, resp.Err)
				s.ResponseChan <- resp
			}(ctx, req)
		}
	}
}

func (s *System) cancel() {
	s.cancelMu.Lock()
	if s.cancelFunc != nil {
		debug.Log(debug.FS, "Cancelling running scan")
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.cancelMu.Unlock()
}

// skipDirRoots contains top-level directories never worth mirroring
var skipDirRoots = map[string]bool{
	"dev":        true,
	"proc":       true,
	"sys":        true,
	"run":        true,
	"snap":       true,
	"boot":       true,
	"lost+found": true,
}

// shouldSkipPath returns true if the path lives under a system root.
func shouldSkipPath(path string) bool {
	if len(path) < 2 || path[0] != '/' {
		return false
	}
	rest := path[1:]
	if i := strings.IndexByte(rest, '/'); i != -1 {
		rest = rest[:i]
	}
	return skipDirRoots[rest]
}

var errLimit = errors.New("fs: entry limit reached")

func (s *System) scanTree(ctx context.Context, req Request) Response {
	root := filepath.Clean(req.Path)
	maxDepth := req.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 1
	}

	var (
		mu      sync.Mutex
		entries []Entry
		count   atomic.Int64
	)

	conf := &fastwalk.Config{Follow: false}
	err := fastwalk.Walk(conf, root, func(fullPath string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			debug.Log(debug.FS_ENTRY, "scanTree: walk error at %q: %v", fullPath, err)
			if fullPath == root {
				return err
			}
			return nil
		}
		if fullPath == root {
			return nil
		}

		if shouldSkipPath(fullPath) || (!req.ShowDotfiles && strings.HasPrefix(d.Name(), ".")) {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, fullPath)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		depth := strings.Count(rel, "/") + 1

		if req.MaxEntries > 0 && count.Add(1) > int64(req.MaxEntries) {
			return errLimit
		}

		debug.Log(debug.FS_ENTRY, "scanTree: %q dir=%v depth=%d", rel, d.IsDir(), depth)
		mu.Lock()
		entries = append(entries, Entry{RelPath: rel, Name: d.Name(), IsDir: d.IsDir(), Depth: depth})
		mu.Unlock()

		if d.IsDir() && depth >= maxDepth {
			return fastwalk.SkipDir
		}
		return nil
	})

	resp := Response{Op: ScanTree, Path: root}
	switch {
	case ctx.Err() != nil:
		resp.Cancelled = true
		return resp
	case errors.Is(err, errLimit):
		resp.Truncated = true
	case err != nil:
		resp.Err = err
		return resp
	}

	SortEntries(entries)
	resp.Entries = dropOrphans(entries)
	return resp
}

// SortEntries orders entries depth-first: every directory precedes its
// contents and siblings are alphabetical.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return lessSegments(strings.Split(entries[i].RelPath, "/"), strings.Split(entries[j].RelPath, "/"))
	})
}

func lessSegments(a, b []string) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return len(a) < len(b)
}

// dropOrphans removes entries whose parent directory didn't make it into a
// truncated scan. Entries must already be sorted.
func dropOrphans(entries []Entry) []Entry {
	dirs := make(map[string]bool)
	out := entries[:0]
	for _, e := range entries {
		if parent := filepath.ToSlash(filepath.Dir(e.RelPath)); parent != "." && !dirs[parent] {
			continue
		}
		if e.IsDir {
			dirs[e.RelPath] = true
		}
		out = append(out, e)
	}
	return out
}
