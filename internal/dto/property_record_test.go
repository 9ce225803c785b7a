package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		payload  string
		expected []string
	}{
		{
			name:     "json array",
			payload:  `["a.jpg", "b.jpg"]`,
			expected: []string{"a.jpg", "b.jpg"},
		},
		{
			name:     "single string",
			payload:  `"a.jpg"`,
			expected: []string{"a.jpg"},
		},
		{
			name:     "comma joined string",
			payload:  `"a.jpg, b.jpg,c.jpg"`,
			expected: []string{"a.jpg", "b.jpg", "c.jpg"},
		},
		{
			name:     "empty string",
			payload:  `""`,
			expected: nil,
		},
		{
			name:     "null",
			payload:  `null`,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var list StringList
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &list))
			assert.Equal(t, tc.expected, []string(list))
		})
	}
}

func TestPropertyRecord_DecodesMongoShape(t *testing.T) {
	payload := `{
		"_id": "66f1a",
		"title": "Appartement S+2",
		"location": "La Marsa",
		"price": "320000",
		"type": "Appartement",
		"status": "À Vendre",
		"sqft": 110,
		"tags": ["Balcon"],
		"featured": true,
		"images": ["a.jpg", "b.jpg"],
		"planImage": "plan.jpg"
	}`

	var record PropertyRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &record))

	assert.Equal(t, "66f1a", record.MongoID)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, []string(record.Images))
	assert.Equal(t, []string{"plan.jpg"}, []string(record.PlanImage))
	assert.Nil(t, record.IsRental)
	assert.True(t, record.Featured)
}
