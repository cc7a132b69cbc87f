// Package provider implements the request handler: one JSON request in, one
// resource action against the filesystem, one JSON response out.
package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"

	"github.com/ideamans/go-l10n"
	"github.com/user/fileprov/pkg/ports"
)

// ErrNotFound reports a read against a resource that does not exist. The CLI
// layer maps it to the distinguished not-found exit status so orchestrators
// can branch on it without parsing output.
var ErrNotFound = errors.New("resource not found")

// ErrMissingID reports a request that needs an id but carries none.
var ErrMissingID = errors.New("id is required")

// Request is the JSON document consumed from standard input. Fields are
// permissive: anything missing defaults to the empty string, and unknown
// fields (such as an orchestrator's echo of prior output) are ignored.
type Request struct {
	ID    string       `json:"id"`
	Input RequestInput `json:"input"`
}

// RequestInput carries the desired state of the resource.
type RequestInput struct {
	Content string `json:"content"`
}

// Response is the JSON document written to standard output on success.
type Response struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// Handler executes a single resource action. It holds no state across
// invocations; the filesystem is the only store.
type Handler struct {
	fs      ports.FileSystem
	logger  ports.Logger
	tempDir string
}

// New creates a Handler backed by the given filesystem. Created resources
// are allocated in the system temporary directory.
func New(fs ports.FileSystem, logger ports.Logger) *Handler {
	return &Handler{
		fs:     fs,
		logger: logger.WithComponent("provider"),
	}
}

// NewWithTempDir creates a Handler that allocates created resources in dir
// instead of the system temporary directory.
func NewWithTempDir(fs ports.FileSystem, logger ports.Logger, dir string) *Handler {
	h := New(fs, logger)
	h.tempDir = dir
	return h
}

// Handle reads one request document from r, performs the action, and writes
// the response document, newline-terminated, to w. Nothing is written to w
// unless the action fully succeeds; delete produces no response body at all.
func (h *Handler) Handle(action Action, r io.Reader, w io.Writer) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return fmt.Errorf("parse request: %w", err)
	}

	h.logger.Debug(l10n.F("Handling %s for %q", action, req.ID))

	var resp *Response
	switch action {
	case ActionCreate:
		resp, err = h.create(req)
	case ActionRead:
		resp, err = h.read(req)
	case ActionUpdate:
		resp, err = h.update(req)
	case ActionDelete:
		resp, err = h.remove(req)
	default:
		err = fmt.Errorf("unknown action: %d", action)
	}
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.logger.Error(l10n.F("%s failed: %s", action, err))
		}
		return err
	}

	if resp == nil {
		return nil
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// create allocates a fresh path in the temporary area and writes the
// requested content to it. Path uniqueness holds across concurrent
// invocations; the filesystem reserves the name exclusively.
func (h *Handler) create(req Request) (*Response, error) {
	path, err := h.fs.TempFile(h.tempDir, "fileprov-")
	if err != nil {
		return nil, fmt.Errorf("allocate resource: %w", err)
	}
	if err := h.fs.WriteFile(path, []byte(req.Input.Content)); err != nil {
		return nil, fmt.Errorf("write resource: %w", err)
	}
	h.logger.Debug(l10n.F("Created %s (%d bytes)", path, len(req.Input.Content)))
	return &Response{ID: path, Content: req.Input.Content}, nil
}

// read returns the contents of an existing resource. A missing resource is
// the one distinguished failure of the whole contract.
func (h *Handler) read(req Request) (*Response, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("read: %w", ErrMissingID)
	}
	exists, err := h.fs.Exists(req.ID)
	if err != nil {
		return nil, fmt.Errorf("stat resource: %w", err)
	}
	if !exists {
		h.logger.Debug(l10n.F("Resource %s does not exist", req.ID))
		return nil, fmt.Errorf("%s: %w", req.ID, ErrNotFound)
	}
	data, err := h.fs.ReadFile(req.ID)
	if err != nil {
		return nil, fmt.Errorf("read resource: %w", err)
	}
	return &Response{ID: req.ID, Content: string(data)}, nil
}

// update overwrites the resource in full. There is no existence check: the
// write primitive decides what happens for a path that is not there yet.
func (h *Handler) update(req Request) (*Response, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("update: %w", ErrMissingID)
	}
	if err := h.fs.WriteFile(req.ID, []byte(req.Input.Content)); err != nil {
		return nil, fmt.Errorf("write resource: %w", err)
	}
	h.logger.Debug(l10n.F("Updated %s (%d bytes)", req.ID, len(req.Input.Content)))
	return &Response{ID: req.ID, Content: req.Input.Content}, nil
}

// remove deletes the resource. Deleting a resource that is already gone is
// success, so the operation stays idempotent.
func (h *Handler) remove(req Request) (*Response, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("delete: %w", ErrMissingID)
	}
	if err := h.fs.Remove(req.ID); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			h.logger.Debug(l10n.F("Resource %s already gone", req.ID))
			return nil, nil
		}
		return nil, fmt.Errorf("remove resource: %w", err)
	}
	h.logger.Debug(l10n.F("Deleted %s", req.ID))
	return nil, nil
}
