package assets

// Page template names.
const (
	TemplateBase  = "base"
	TemplateIndex = "index"
	TemplatePost  = "post"
)

// Loader defines the contract for loading HTML page templates.
type Loader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
