package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowsToRecords(t *testing.T) {
	tests := []struct {
		name     string
		values   [][]interface{}
		expected []Record
	}{
		{
			name:     "Empty sheet returns nil",
			values:   nil,
			expected: nil,
		},
		{
			name: "Header only yields no records",
			values: [][]interface{}{
				{"user_id", "name"},
			},
			expected: []Record{},
		},
		{
			name: "Rows keyed by header",
			values: [][]interface{}{
				{"user_id", "name", "created_at"},
				{"42", "Exercise", "2024-05-01T08:00:00Z"},
				{"42", "Reading", "2024-05-02T08:00:00Z"},
			},
			expected: []Record{
				{"user_id": "42", "name": "Exercise", "created_at": "2024-05-01T08:00:00Z"},
				{"user_id": "42", "name": "Reading", "created_at": "2024-05-02T08:00:00Z"},
			},
		},
		{
			name: "Short row padded with empty fields",
			values: [][]interface{}{
				{"user_id", "habit_name", "notes"},
				{"42", "Exercise"},
			},
			expected: []Record{
				{"user_id": "42", "habit_name": "Exercise", "notes": ""},
			},
		},
		{
			name: "Extra cells beyond the header ignored",
			values: [][]interface{}{
				{"user_id"},
				{"42", "stray"},
			},
			expected: []Record{
				{"user_id": "42"},
			},
		},
		{
			name: "Numeric cells stringified",
			values: [][]interface{}{
				{"user_id", "rating"},
				{42, 5},
			},
			expected: []Record{
				{"user_id": "42", "rating": "5"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rowsToRecords(tt.values))
		})
	}
}

func TestRecordGet(t *testing.T) {
	record := Record{"user_id": "42"}
	assert.Equal(t, "42", record.Get("user_id"))
	assert.Equal(t, "", record.Get("missing_column"))
}
