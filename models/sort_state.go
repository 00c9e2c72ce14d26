package models

import "net/url"

type SortField string

const (
	SortByDate         SortField = "date"
	SortByTemperatureC SortField = "temperatureC"
	SortByTemperatureF SortField = "temperatureF"
	SortBySummary      SortField = "summary"
)

// SortFields lists the sortable columns in display order.
var SortFields = []SortField{SortByDate, SortByTemperatureC, SortByTemperatureF, SortBySummary}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

const (
	SORT_FIELD_QUERY_ARG     = "sort"
	SORT_DIRECTION_QUERY_ARG = "dir"
)

// SortState is the forecast table's sort column and direction.
type SortState struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSortState sorts by date, earliest first.
func DefaultSortState() SortState {
	return SortState{Field: SortByDate, Direction: Ascending}
}

// Toggle returns the state after a click on field's header.
func (s SortState) Toggle(field SortField) SortState {
	if field == s.Field {
		if s.Direction == Ascending {
			return SortState{Field: field, Direction: Descending}
		}
		return SortState{Field: field, Direction: Ascending}
	}
	return SortState{Field: field, Direction: Ascending}
}

// Values encodes the state as query values.
func (s SortState) Values() url.Values {
	q := url.Values{}
	q.Set(SORT_FIELD_QUERY_ARG, string(s.Field))
	q.Set(SORT_DIRECTION_QUERY_ARG, string(s.Direction))
	return q
}

// ParseSortState reads the state from query values. Unknown values fall back to the default.
func ParseSortState(vals url.Values) SortState {
	state := DefaultSortState()

	field := SortField(vals.Get(SORT_FIELD_QUERY_ARG))
	for _, f := range SortFields {
		if f == field {
			state.Field = f
			break
		}
	}

	if SortDirection(vals.Get(SORT_DIRECTION_QUERY_ARG)) == Descending {
		state.Direction = Descending
	}

	return state
}
