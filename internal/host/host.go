// Package host loads the hello wasm module and calls its exports.
package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"nickandperla.net/primer/internal/wasmabi"
)

// ErrMissingExport reports a module that lacks one of the expected functions.
var ErrMissingExport = errors.New("missing export")

// Option configures Load.
type Option func(*config)

type config struct {
	name   string
	logger *zap.Logger
}

// WithName sets the instantiated module's name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Module is an instantiated hello module.
type Module struct {
	runtime wazero.Runtime
	mod     api.Module
	logger  *zap.Logger

	add   api.Function
	greet api.Function
	alloc api.Function
	free  api.Function
}

// Load compiles and instantiates a reactor module built from cmd/hello.
func Load(ctx context.Context, wasm []byte, opts ...Option) (*Module, error) {
	c := &config{name: "hello", logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	r := wazero.NewRuntime(ctx)
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("instantiate wasi: %w", err)
	}

	compiled, err := r.CompileModule(ctx, wasm)
	if err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("compile module: %w", err)
	}

	cfg := wazero.NewModuleConfig().
		WithName(c.name).
		WithStartFunctions("_initialize")
	mod, err := r.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("instantiate module: %w", err)
	}

	m := &Module{runtime: r, mod: mod, logger: c.logger}
	for name, fn := range map[string]*api.Function{
		"add":   &m.add,
		"greet": &m.greet,
		"alloc": &m.alloc,
		"free":  &m.free,
	} {
		*fn = mod.ExportedFunction(name)
		if *fn == nil {
			r.Close(ctx)
			return nil, fmt.Errorf("%w: %s", ErrMissingExport, name)
		}
	}

	c.logger.Debug("module loaded", zap.String("name", c.name), zap.Int("bytes", len(wasm)))
	return m, nil
}

// Add calls the module's add export.
func (m *Module) Add(ctx context.Context, a, b int32) (int32, error) {
	res, err := m.add.Call(ctx, api.EncodeI32(a), api.EncodeI32(b))
	if err != nil {
		return 0, fmt.Errorf("call add: %w", err)
	}
	return api.DecodeI32(res[0]), nil
}

// Greet calls the module's greet export, copying name into module memory and
// the result back out. Both buffers are freed before returning.
func (m *Module) Greet(ctx context.Context, name string) (string, error) {
	ptr, err := m.writeString(ctx, name)
	if err != nil {
		return "", err
	}
	defer m.release(ctx, ptr)

	res, err := m.greet.Call(ctx, uint64(ptr), uint64(len(name)))
	if err != nil {
		return "", fmt.Errorf("call greet: %w", err)
	}

	outPtr, outLen := wasmabi.Unpack(res[0])
	if outLen == 0 {
		return "", nil
	}
	defer m.release(ctx, outPtr)

	buf, ok := m.mod.Memory().Read(outPtr, outLen)
	if !ok {
		return "", fmt.Errorf("greet result out of range: ptr=%d len=%d", outPtr, outLen)
	}
	// buf aliases module memory; copy before the buffer is freed.
	return string(buf), nil
}

// Close releases the runtime and everything instantiated in it.
func (m *Module) Close(ctx context.Context) error {
	return m.runtime.Close(ctx)
}

func (m *Module) writeString(ctx context.Context, s string) (uint32, error) {
	res, err := m.alloc.Call(ctx, uint64(len(s)))
	if err != nil {
		return 0, fmt.Errorf("call alloc: %w", err)
	}
	ptr := api.DecodeU32(res[0])
	if !m.mod.Memory().WriteString(ptr, s) {
		m.release(ctx, ptr)
		return 0, fmt.Errorf("write out of range: ptr=%d len=%d", ptr, len(s))
	}
	return ptr, nil
}

func (m *Module) release(ctx context.Context, ptr uint32) {
	if _, err := m.free.Call(ctx, uint64(ptr)); err != nil {
		m.logger.Warn("free failed", zap.Uint32("ptr", ptr), zap.Error(err))
	}
}
