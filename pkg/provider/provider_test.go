package provider

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/user/fileprov/pkg/adapters/logger"
	"github.com/user/fileprov/pkg/mocks"
)

func handle(t *testing.T, fs *mocks.FileSystem, action Action, body string) (Response, *bytes.Buffer, error) {
	t.Helper()

	h := New(fs, logger.NewNoop())
	out := &bytes.Buffer{}
	err := h.Handle(action, strings.NewReader(body), out)

	var resp Response
	if err == nil && out.Len() > 0 {
		if decodeErr := json.Unmarshal(out.Bytes(), &resp); decodeErr != nil {
			t.Fatalf("response is not valid JSON: %v\noutput: %q", decodeErr, out.String())
		}
	}
	return resp, out, err
}

func TestCreateRoundTrip(t *testing.T) {
	fs := mocks.NewFileSystem()

	resp, out, err := handle(t, fs, ActionCreate, `{"input":{"content":"test content"}}`)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if resp.Content != "test content" {
		t.Errorf("expected content %q, got %q", "test content", resp.Content)
	}
	if resp.ID == "" {
		t.Error("expected a non-empty resource id")
	}
	if !strings.HasSuffix(out.String(), "\n") {
		t.Error("response must be newline-terminated")
	}

	data, ok := fs.GetFile(resp.ID)
	if !ok {
		t.Fatalf("resource %s was not written", resp.ID)
	}
	if string(data) != "test content" {
		t.Errorf("resource holds %q, want %q", data, "test content")
	}
}

func TestCreateDefaultsToEmptyContent(t *testing.T) {
	fs := mocks.NewFileSystem()

	resp, _, err := handle(t, fs, ActionCreate, `{}`)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if resp.Content != "" {
		t.Errorf("expected empty content, got %q", resp.Content)
	}
	data, ok := fs.GetFile(resp.ID)
	if !ok {
		t.Fatalf("resource %s was not written", resp.ID)
	}
	if len(data) != 0 {
		t.Errorf("expected empty resource, got %q", data)
	}
}

func TestCreateAllocatesDistinctPaths(t *testing.T) {
	fs := mocks.NewFileSystem()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		resp, _, err := handle(t, fs, ActionCreate, `{"input":{"content":"x"}}`)
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if seen[resp.ID] {
			t.Fatalf("path %s allocated twice", resp.ID)
		}
		seen[resp.ID] = true
	}
}

func TestReadExistingResource(t *testing.T) {
	fs := mocks.NewFileSystem()
	if err := fs.WriteFile("/tmp/testfile", []byte("existing content")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	resp, _, err := handle(t, fs, ActionRead, `{"id":"/tmp/testfile"}`)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if resp.ID != "/tmp/testfile" {
		t.Errorf("expected id %q, got %q", "/tmp/testfile", resp.ID)
	}
	if resp.Content != "existing content" {
		t.Errorf("expected content %q, got %q", "existing content", resp.Content)
	}
}

func TestReadMissingResource(t *testing.T) {
	fs := mocks.NewFileSystem()

	_, out, err := handle(t, fs, ActionRead, `{"id":"/tmp/non_existent"}`)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing may be written on failure, got %q", out.String())
	}
}

func TestUpdateOverwritesInFull(t *testing.T) {
	fs := mocks.NewFileSystem()
	if err := fs.WriteFile("/tmp/testfile", []byte("old content that is longer")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	resp, _, err := handle(t, fs, ActionUpdate, `{"id":"/tmp/testfile","input":{"content":"new"}}`)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if resp.Content != "new" {
		t.Errorf("expected content %q, got %q", "new", resp.Content)
	}
	data, _ := fs.GetFile("/tmp/testfile")
	if string(data) != "new" {
		t.Errorf("expected truncate-and-write, resource holds %q", data)
	}
}

func TestUpdateWithoutExistenceCheck(t *testing.T) {
	// Update performs no existence check; whether a missing path is created
	// or rejected is up to the write primitive. The os adapter creates it.
	fs := mocks.NewFileSystem()

	resp, _, err := handle(t, fs, ActionUpdate, `{"id":"/tmp/fresh","input":{"content":"c2"}}`)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if resp.Content != "c2" {
		t.Errorf("expected content %q, got %q", "c2", resp.Content)
	}
}

func TestDeleteExistingResource(t *testing.T) {
	fs := mocks.NewFileSystem()
	if err := fs.WriteFile("/tmp/testfile", []byte("x")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	_, out, err := handle(t, fs, ActionDelete, `{"id":"/tmp/testfile"}`)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("delete must not produce a response body, got %q", out.String())
	}
	if _, ok := fs.GetFile("/tmp/testfile"); ok {
		t.Error("resource still exists after delete")
	}
}

func TestDeleteMissingResourceIsIdempotent(t *testing.T) {
	fs := mocks.NewFileSystem()

	_, out, err := handle(t, fs, ActionDelete, `{"id":"/tmp/never_existed"}`)
	if err != nil {
		t.Fatalf("delete of a missing resource must succeed, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("delete must not produce a response body, got %q", out.String())
	}
}

func TestMissingIDIsRejected(t *testing.T) {
	// The original provider let a missing id degrade into an undefined-path
	// I/O error. That behavior was flagged as ambiguous; here it is hardened
	// into an explicit validation error, which still exits non-zero without
	// claiming the reserved not-found status.
	fs := mocks.NewFileSystem()

	for _, action := range []Action{ActionRead, ActionUpdate, ActionDelete} {
		_, out, err := handle(t, fs, action, `{}`)
		if !errors.Is(err, ErrMissingID) {
			t.Errorf("%s: expected ErrMissingID, got %v", action, err)
		}
		if errors.Is(err, ErrNotFound) {
			t.Errorf("%s: missing id must not map to the not-found signal", action)
		}
		if out.Len() != 0 {
			t.Errorf("%s: nothing may be written on failure, got %q", action, out.String())
		}
	}
}

func TestMalformedRequestBody(t *testing.T) {
	fs := mocks.NewFileSystem()

	for _, body := range []string{"not json", "", `{"id":`} {
		_, out, err := handle(t, fs, ActionRead, body)
		if err == nil {
			t.Errorf("body %q: expected a parse error", body)
		}
		if out.Len() != 0 {
			t.Errorf("body %q: nothing may be written on failure, got %q", body, out.String())
		}
	}
}

func TestUnknownRequestFieldsAreIgnored(t *testing.T) {
	// Orchestrators echo prior state in an "output" field; the handler
	// tolerates it.
	fs := mocks.NewFileSystem()
	if err := fs.WriteFile("/tmp/testfile", []byte("c1")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	resp, _, err := handle(t, fs, ActionRead, `{"id":"/tmp/testfile","output":{"content":"stale"}}`)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if resp.Content != "c1" {
		t.Errorf("expected content %q, got %q", "c1", resp.Content)
	}
}

func TestCreateFailurePropagates(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.TempFileFunc = func(dir, pattern string) (string, error) {
		return "", errors.New("no space left on device")
	}

	_, out, err := handle(t, fs, ActionCreate, `{"input":{"content":"x"}}`)
	if err == nil {
		t.Fatal("expected allocation failure to propagate")
	}
	if out.Len() != 0 {
		t.Errorf("nothing may be written on failure, got %q", out.String())
	}
}
