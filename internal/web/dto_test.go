package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kickerlab/foosserver/internal/domain"
)

type fakeForm map[string]string

func (f fakeForm) FormValue(key string, defaultValue ...string) string {
	if v, ok := f[key]; ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func TestParseMatchReport(t *testing.T) {
	form := fakeForm{
		"a1":      "Alice",
		"a2":      "Bob",
		"b1":      "Carol",
		"b2":      "Dave",
		"goals-a": "10",
		"goals-b": "8",
	}
	report, err := parseMatchReport(form)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchReport{
		A1:     "Alice",
		A2:     "Bob",
		B1:     "Carol",
		B2:     "Dave",
		GoalsA: 10,
		GoalsB: 8,
	}, report)
}

func TestParseMatchReportErrors(t *testing.T) {
	tests := []struct {
		name string
		form fakeForm
	}{
		{
			name: "missing player",
			form: fakeForm{
				"a1":      "Alice",
				"a2":      "Bob",
				"b1":      "Carol",
				"goals-a": "10",
				"goals-b": "8",
			},
		},
		{
			name: "goals not a number",
			form: fakeForm{
				"a1":      "Alice",
				"a2":      "Bob",
				"b1":      "Carol",
				"b2":      "Dave",
				"goals-a": "ten",
				"goals-b": "8",
			},
		},
		{
			name: "negative goals",
			form: fakeForm{
				"a1":      "Alice",
				"a2":      "Bob",
				"b1":      "Carol",
				"b2":      "Dave",
				"goals-a": "10",
				"goals-b": "-1",
			},
		},
		{
			name: "empty form",
			form: fakeForm{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMatchReport(tt.form)
			assert.Error(t, err)
		})
	}
}

func TestParseSignUpRequest(t *testing.T) {
	req, err := parseSignUpRequest(fakeForm{
		"username":        "alice_99",
		"password":        "s3cret",
		"password-repeat": "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice_99", req.name)
	assert.Equal(t, "s3cret", req.password)

	_, err = parseSignUpRequest(fakeForm{
		"username":        "alice",
		"password":        "s3cret",
		"password-repeat": "other",
	})
	assert.Error(t, err)

	_, err = parseSignUpRequest(fakeForm{
		"username": "1alice",
		"password": "s3cret",
	})
	assert.Error(t, err)
}

func TestParseSignInRequest(t *testing.T) {
	req, err := parseSignInRequest(fakeForm{
		"username": "alice",
		"password": "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", req.name)

	_, err = parseSignInRequest(fakeForm{
		"username": "alice",
	})
	assert.Error(t, err)
}

func TestParseHistoryLimit(t *testing.T) {
	assert.Equal(t, 20, parseHistoryLimit("", 20))
	assert.Equal(t, 20, parseHistoryLimit("abc", 20))
	assert.Equal(t, 20, parseHistoryLimit("-5", 20))
	assert.Equal(t, 7, parseHistoryLimit("7", 20))
}

func TestBuildChartSeries(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	history := []domain.RatingSnapshot{
		{PlayerName: "Alice", Rating: 1010, CreatedAt: base},
		{PlayerName: "Bob", Rating: 990, CreatedAt: base},
		{PlayerName: "Alice", Rating: 1023, CreatedAt: base.Add(time.Hour)},
	}
	series := buildChartSeries(history)
	require.Len(t, series, 2)
	assert.Equal(t, "Alice", series[0].Name)
	require.Len(t, series[0].Points, 2)
	assert.Equal(t, 1010, series[0].Points[0].Rating)
	assert.Equal(t, 1023, series[0].Points[1].Rating)
	assert.Equal(t, "Bob", series[1].Name)
	require.Len(t, series[1].Points, 1)
}
