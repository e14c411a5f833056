package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRunAddRejectsBadInput(t *testing.T) {
	logger = zap.NewNop()
	wasmPath = filepath.Join(t.TempDir(), "missing.wasm")

	err := runAdd(addCmd, []string{"1", "nope"})
	if err == nil || !strings.Contains(err.Error(), "invalid int32") {
		t.Fatalf("expected invalid int32 error, got %v", err)
	}
}

func TestMissingModule(t *testing.T) {
	logger = zap.NewNop()
	wasmPath = filepath.Join(t.TempDir(), "missing.wasm")

	var out bytes.Buffer
	greetCmd.SetOut(&out)
	defer greetCmd.SetOut(nil)
	greetCmd.SetContext(context.Background())

	err := runGreet(greetCmd, []string{"World"})
	if err == nil || !strings.Contains(err.Error(), "read module") {
		t.Fatalf("expected read module error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}
