package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
)

// DefaultManager is the default implementation of Manager.
type DefaultManager struct {
	executor *TengoExecutor
	mutex    sync.RWMutex
}

// NewManager creates a new hook manager.
func NewManager() *DefaultManager {
	return &DefaultManager{
		executor: NewTengoExecutor(),
	}
}

// Execute runs the specified hook type with the given context.
func (m *DefaultManager) Execute(hookType Type, ctx Context) error {
	if !m.HasHook(hookType) {
		return nil
	}

	ctxCopy := ctx
	if ctxCopy.Vars == nil {
		ctxCopy.Vars = make(map[string]interface{})
	}
	return m.executor.Execute(hookType, ctxCopy)
}

// AddHook adds a new hook.
func (m *DefaultManager) AddHook(hook Hook) error {
	if hook.Type == "" {
		return errors.ErrHookTypeEmpty
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.executor.AddScript(hook.Type, hook.Content)
	return nil
}

// RemoveHook removes a hook of the specified type.
func (m *DefaultManager) RemoveHook(hookType Type) error {
	if hookType == "" {
		return errors.ErrHookTypeEmpty
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.executor.RemoveScript(hookType)
	return nil
}

// HasHook checks if a hook of the specified type exists.
func (m *DefaultManager) HasHook(hookType Type) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.executor.HasScript(hookType)
}

// LoadFromPayloadDir loads hook scripts from the hooks/ directory of an
// extracted mod payload. Missing directories are not an error; a mod
// without hooks is the normal case.
func LoadFromPayloadDir(manager Manager, payloadDir string) error {
	hooksDir := filepath.Join(payloadDir, "hooks")
	entries, err := os.ReadDir(hooksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read hooks directory %s: %w", hooksDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".tengo" {
			continue
		}

		hookType := Type(strings.TrimSuffix(entry.Name(), ".tengo"))
		switch hookType {
		case PreInstall, PostInstall:
		default:
			continue // unknown hook names are ignored
		}

		content, err := os.ReadFile(filepath.Join(hooksDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("error reading hook file %s: %w", entry.Name(), err)
		}
		if err := manager.AddHook(Hook{Type: hookType, Content: string(content)}); err != nil {
			return fmt.Errorf("error adding hook %s: %w", hookType, err)
		}
	}
	return nil
}
