package hooks

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/cachesweep/cachesweep/pkg/errors"
)

// TengoExecutor handles the execution of Tengo scripts.
type TengoExecutor struct {
	scripts map[HookType]string
	mutex   sync.RWMutex
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		scripts: make(map[HookType]string),
	}
}

// Execute runs the specified hooks type with the given context.
func (e *TengoExecutor) Execute(hookType HookType, ctx HookContext) error {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	script, exists := e.scripts[hookType]
	if !exists {
		return nil // No script for this hooks type
	}

	scriptInstance := tengo.NewScript([]byte(script))

	// Add standard library modules
	modules := stdlib.GetModuleMap("fmt", "os", "strings", "times")
	scriptInstance.SetImports(modules)

	paths := make([]interface{}, 0, len(ctx.Paths))
	for _, p := range ctx.Paths {
		paths = append(paths, p)
	}

	contextVars := map[string]interface{}{
		"toolName":   ctx.ToolName,
		"paths":      paths,
		"dryRun":     ctx.DryRun,
		"freedBytes": ctx.FreedBytes,
	}
	for name, value := range contextVars {
		if err := scriptInstance.Add(name, value); err != nil {
			return fmt.Errorf("failed to add %s to script: %w", name, err)
		}
	}

	// Add custom variables
	for k, v := range ctx.Vars {
		if err := scriptInstance.Add(k, v); err != nil {
			return fmt.Errorf("failed to add variable '%s' to script: %w", k, err)
		}
	}

	compiled, err := scriptInstance.Run()
	if err != nil {
		return fmt.Errorf("%s: %w: %w", hookType, errors.ErrHookExecution, err)
	}

	// Check for any returned error
	errVar := compiled.Get("err")
	if errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return fmt.Errorf("%w: %w", errors.ErrHookScript, v)
		case string:
			if v != "" {
				return fmt.Errorf("%w: %s", errors.ErrHookScript, v)
			}
		}
	}

	return nil
}

// AddHook adds or updates a script for the specified hooks type.
func (e *TengoExecutor) AddHook(hook Hook) error {
	if hook.Type == "" {
		return errors.ErrHookTypeEmpty
	}
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.scripts[hook.Type] = hook.Content
	return nil
}

// RemoveHook removes the script for the specified hooks type.
func (e *TengoExecutor) RemoveHook(hookType HookType) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	delete(e.scripts, hookType)
	return nil
}

// HasHook checks if a script exists for the specified hooks type.
func (e *TengoExecutor) HasHook(hookType HookType) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	_, exists := e.scripts[hookType]
	return exists
}
