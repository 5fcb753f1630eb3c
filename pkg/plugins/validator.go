package plugins

import (
	"fmt"
	"regexp"
)

// Severity grades a validation finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

var (
	// Sponge plugin ids: lowercase, starting with a letter, 2 to 64 characters
	pluginIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{1,63}$`)
	urlPattern      = regexp.MustCompile(`^https?://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// ValidationError represents a manifest validation error
type ValidationError struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (e ValidationError) String() string {
	return fmt.Sprintf("%s: %s: %s", e.Severity, e.Field, e.Message)
}

// HasErrors reports whether any finding has error severity
func HasErrors(findings []ValidationError) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ValidateManifest checks a manifest against the shape the generator emits.
// Warnings flag values Sponge may reject at load time.
func ValidateManifest(manifest *Manifest) []ValidationError {
	var errors []ValidationError

	if manifest.Loader.Name == "" {
		errors = append(errors, ValidationError{
			Field:    "loader.name",
			Message:  "Loader name is required",
			Severity: SeverityError,
		})
	} else if manifest.Loader.Name != LoaderName {
		errors = append(errors, ValidationError{
			Field:    "loader.name",
			Message:  fmt.Sprintf("Unexpected loader %q, expected %q", manifest.Loader.Name, LoaderName),
			Severity: SeverityWarning,
		})
	}

	if manifest.Loader.Version == "" {
		errors = append(errors, ValidationError{
			Field:    "loader.version",
			Message:  "Loader version is required",
			Severity: SeverityError,
		})
	}

	if manifest.License == "" {
		errors = append(errors, ValidationError{
			Field:    "license",
			Message:  "License is required",
			Severity: SeverityError,
		})
	}

	if len(manifest.Plugins) == 0 {
		errors = append(errors, ValidationError{
			Field:    "plugins",
			Message:  "At least one plugin entry is required",
			Severity: SeverityError,
		})
	}

	for i, plugin := range manifest.Plugins {
		errors = append(errors, validatePluginEntry(fmt.Sprintf("plugins[%d]", i), &plugin)...)
	}

	return errors
}

func validatePluginEntry(prefix string, plugin *PluginEntry) []ValidationError {
	var errors []ValidationError

	if plugin.ID == "" {
		errors = append(errors, ValidationError{
			Field:    prefix + ".id",
			Message:  "Plugin ID is required",
			Severity: SeverityError,
		})
	} else if !isValidPluginID(plugin.ID) {
		errors = append(errors, ValidationError{
			Field:    prefix + ".id",
			Message:  fmt.Sprintf("Plugin ID %q should be lowercase alphanumeric with '_' or '-', starting with a letter", plugin.ID),
			Severity: SeverityWarning,
		})
	}

	if plugin.Version == "" {
		errors = append(errors, ValidationError{
			Field:    prefix + ".version",
			Message:  "Version is required",
			Severity: SeverityError,
		})
	}

	if plugin.Entrypoint == "" {
		errors = append(errors, ValidationError{
			Field:    prefix + ".entrypoint",
			Message:  "Entrypoint is required",
			Severity: SeverityError,
		})
	}

	if plugin.Links.Homepage != "" && !isValidURL(plugin.Links.Homepage) {
		errors = append(errors, ValidationError{
			Field:    prefix + ".links.homepage",
			Message:  "Homepage URL appears invalid",
			Severity: SeverityWarning,
		})
	}

	coreCount, platformCount := 0, 0
	for _, dep := range plugin.Dependencies {
		switch dep.ID {
		case CoreID:
			coreCount++
		case PlatformAPIID:
			platformCount++
		}
	}

	if coreCount != 1 {
		errors = append(errors, ValidationError{
			Field:    prefix + ".dependencies",
			Message:  fmt.Sprintf("Expected exactly one %s dependency, found %d", CoreID, coreCount),
			Severity: SeverityError,
		})
	}

	if platformCount != 1 {
		errors = append(errors, ValidationError{
			Field:    prefix + ".dependencies",
			Message:  fmt.Sprintf("Expected exactly one %s dependency, found %d", PlatformAPIID, platformCount),
			Severity: SeverityError,
		})
	}

	// The synthesized pair always closes the list
	n := len(plugin.Dependencies)
	if coreCount == 1 && platformCount == 1 &&
		(plugin.Dependencies[n-2].ID != CoreID || plugin.Dependencies[n-1].ID != PlatformAPIID) {
		errors = append(errors, ValidationError{
			Field:    prefix + ".dependencies",
			Message:  fmt.Sprintf("%s and %s must be the last two dependencies, in that order", CoreID, PlatformAPIID),
			Severity: SeverityError,
		})
	}

	return errors
}

func isValidPluginID(id string) bool {
	return pluginIDPattern.MatchString(id)
}

func isValidURL(url string) bool {
	return urlPattern.MatchString(url)
}
