// Package hook runs optional Tengo scripts shipped inside mod archives
// around the install swap. Hooks are advisory for the pipeline: a failing
// post-install hook is logged, never surfaced as an install failure.
package hook

// Type represents the type of hook.
type Type string

// Supported hook types.
const (
	PreInstall  Type = "pre-install"
	PostInstall Type = "post-install"
)

// Hook represents a hook script with its type and content.
type Hook struct {
	Type    Type
	Content string
}

// Context contains information passed to hook scripts.
type Context struct {
	ModID      string
	ModVersion string
	ModName    string
	// ArchivePath is the downloaded mod archive being installed.
	ArchivePath string
	// InstallPath is the target path the mod is being installed to.
	InstallPath string
	Vars        map[string]interface{}
}

// Manager defines the interface for managing hooks.
type Manager interface {
	// Execute runs the specified hook type with the given context.
	Execute(hookType Type, ctx Context) error

	// AddHook adds a new hook.
	AddHook(hook Hook) error

	// RemoveHook removes a hook of the specified type.
	RemoveHook(hookType Type) error

	// HasHook checks if a hook of the specified type exists.
	HasHook(hookType Type) bool
}
