package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Status
		wantErr bool
	}{
		{name: "should parse TODO", value: "TODO", want: StatusTodo},
		{name: "should parse IN_PROGRESS", value: "IN_PROGRESS", want: StatusInProgress},
		{name: "should parse DONE", value: "DONE", want: StatusDone},
		{name: "should reject lowercase", value: "todo", wantErr: true},
		{name: "should reject empty", value: "", wantErr: true},
		{name: "should reject unknown", value: "BLOCKED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Priority
		wantErr bool
	}{
		{name: "should parse LOW", value: "LOW", want: PriorityLow},
		{name: "should parse MEDIUM", value: "MEDIUM", want: PriorityMedium},
		{name: "should parse HIGH", value: "HIGH", want: PriorityHigh},
		{name: "should reject unknown", value: "URGENT", wantErr: true},
		{name: "should reject empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriority(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTask_IsValid(t *testing.T) {
	valid := Task{
		ID:       "t1",
		Title:    "Fix bug",
		Status:   StatusTodo,
		Priority: PriorityMedium,
		DueDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, valid.IsValid())

	noID := valid
	noID.ID = ""
	assert.False(t, noID.IsValid())

	noTitle := valid
	noTitle.Title = ""
	assert.False(t, noTitle.IsValid())

	badStatus := valid
	badStatus.Status = "WAITING"
	assert.False(t, badStatus.IsValid())
}

func TestView_HasActiveCriteria(t *testing.T) {
	assert.False(t, View{}.HasActiveCriteria())

	status := StatusTodo
	assert.True(t, View{StatusFilter: &status}.HasActiveCriteria())

	priority := PriorityHigh
	assert.True(t, View{PriorityFilter: &priority}.HasActiveCriteria())

	assert.True(t, View{SearchQuery: "bug"}.HasActiveCriteria())
}
