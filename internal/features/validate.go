package features

import "errors"

// ErrWordPressRequiresLEMP is returned when WordPress is selected without the
// LEMP stack. This is a blocking error: the run is refused.
var ErrWordPressRequiresLEMP = errors.New("wordpress requires the LEMP stack: select LEMP or deselect WordPress")

// ValidateSelection checks feature dependencies. Violations block the run.
func ValidateSelection(selected map[string]bool) error {
	if selected[WordPress] && !selected[LEMP] {
		return ErrWordPressRequiresLEMP
	}
	return nil
}

// SelectionWarnings returns non-blocking advisories for the selection.
func SelectionWarnings(selected map[string]bool) []string {
	var warnings []string
	if selected[Certbot] && !selected[LEMP] {
		warnings = append(warnings, "Certbot works best with Nginx (LEMP stack). Consider enabling LEMP.")
	}
	return warnings
}
