package types

// Extension represents a top-level domain extension checked for availability
type Extension string

const (
	ExtensionCom  Extension = ".com"
	ExtensionAI   Extension = ".ai"
	ExtensionIO   Extension = ".io"
	ExtensionNone Extension = "none"
)

// DefaultExtensions returns the extensions checked by default,
// in best-available priority order.
func DefaultExtensions() []Extension {
	return []Extension{
		ExtensionCom,
		ExtensionAI,
		ExtensionIO,
	}
}

// IsValid checks if the extension is one that can be checked
func (e Extension) IsValid() bool {
	switch e {
	case ExtensionCom, ExtensionAI, ExtensionIO:
		return true
	default:
		return false
	}
}

// String returns the string representation of the extension
func (e Extension) String() string {
	return string(e)
}
