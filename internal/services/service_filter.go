package services

import (
	"cmp"
	"slices"

	"fleetadmin/internal/domain/models"
)

// ApplyServiceFilters keeps entries matching the selected kinds and statuses.
// An empty selection in either dimension lets everything through.
func ApplyServiceFilters(entries []models.ServiceEntry, f models.FilterState) []models.ServiceEntry {
	out := make([]models.ServiceEntry, 0, len(entries))
	for _, e := range entries {
		if len(f.Kinds) > 0 && !slices.Contains(f.Kinds, e.Kind) {
			continue
		}
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, e.Status.Category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortServiceEntries orders by status priority, then by remaining ascending, so
// overdue entries come first inside their category. The input is left untouched.
func SortServiceEntries(entries []models.ServiceEntry) []models.ServiceEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b models.ServiceEntry) int {
		if c := cmp.Compare(a.Status.Category.Priority(), b.Status.Category.Priority()); c != 0 {
			return c
		}
		return cmp.Compare(a.Remaining, b.Remaining)
	})
	return out
}

// ParseFilterState turns raw query lists into a FilterState, dropping unknown values.
func ParseFilterState(kinds, statuses []string) models.FilterState {
	f := models.FilterState{}
	for _, k := range kinds {
		kind := models.ServiceKind(k)
		if slices.Contains(models.ServiceKinds, kind) && !slices.Contains(f.Kinds, kind) {
			f.Kinds = append(f.Kinds, kind)
		}
	}
	for _, s := range statuses {
		switch st := models.StatusCategory(s); st {
		case models.StatusRequired, models.StatusUpcoming, models.StatusGood, models.StatusUnknown:
			if !slices.Contains(f.Statuses, st) {
				f.Statuses = append(f.Statuses, st)
			}
		}
	}
	return f
}
