package wizard

import (
	"github.com/charmbracelet/huh"

	"github.com/imamik/provkit/internal/features"
)

// FeatureOptions returns menu options for the full feature catalog.
func FeatureOptions() []huh.Option[string] {
	return featureOptions(func(features.Feature) bool { return true })
}

// CoreFeatureOptions returns menu options for the non-cluster features.
func CoreFeatureOptions() []huh.Option[string] {
	return featureOptions(func(f features.Feature) bool { return !f.Cluster })
}

// ClusterOptions returns menu options for the security clusters.
func ClusterOptions() []huh.Option[string] {
	return featureOptions(func(f features.Feature) bool { return f.Cluster })
}

func featureOptions(keep func(features.Feature) bool) []huh.Option[string] {
	var options []huh.Option[string]
	for _, f := range features.Catalog {
		if keep(f) {
			options = append(options, huh.NewOption(f.Label+" - "+f.Description, f.Key))
		}
	}
	return options
}

// DevToolOptions returns menu options for the devtools sub-selection.
func DevToolOptions() []huh.Option[string] {
	options := make([]huh.Option[string], len(features.DevToolsCatalog))
	for i, t := range features.DevToolsCatalog {
		options[i] = huh.NewOption(t.Label, t.Key)
	}
	return options
}

// rebootHourLabels maps schedule values to display labels, in menu order.
var rebootHourLabels = []struct {
	Value string
	Label string
}{
	{"1", "Daily at 01:00"},
	{"3", "Daily at 03:00"},
	{"5", "Daily at 05:00"},
	{"*/6", "Every 6 hours"},
	{"*/12", "Every 12 hours"},
}

// RebootHourOptions returns menu options for the reboot schedule.
func RebootHourOptions() []huh.Option[string] {
	options := make([]huh.Option[string], len(rebootHourLabels))
	for i, h := range rebootHourLabels {
		options[i] = huh.NewOption(h.Label, h.Value)
	}
	return options
}
