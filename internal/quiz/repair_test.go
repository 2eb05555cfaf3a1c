package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairers(t *testing.T) {
	tests := []struct {
		name    string
		in      Candidate
		want    Candidate
		dropped string
	}{
		{
			name: "trims and drops blank options",
			in:   Candidate{Question: "  Capital of Kenya? ", Options: []string{" Nairobi", "", "Mombasa ", "  "}, CorrectOption: "Nairobi "},
			want: Candidate{Question: "Capital of Kenya?", Options: []string{"Nairobi", "Mombasa"}, CorrectOption: "Nairobi"},
		},
		{
			name: "dedups options keeping first",
			in:   Candidate{Question: "q", Options: []string{"a", "b", "a", "c"}, CorrectOption: "c"},
			want: Candidate{Question: "q", Options: []string{"a", "b", "c"}, CorrectOption: "c"},
		},
		{
			name: "maps letter to option",
			in:   Candidate{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectOption: "d."},
			want: Candidate{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectOption: "d"},
		},
		{name: "blank question", in: Candidate{Question: " ", Options: []string{"a", "b"}, CorrectOption: "a"}, dropped: "structural"},
		{name: "missing correct", in: Candidate{Question: "q", Options: []string{"a", "b"}}, dropped: "correct-option"},
		{name: "correct not offered", in: Candidate{Question: "q", Options: []string{"a", "b"}, CorrectOption: "zz"}, dropped: "correct-option"},
		{name: "letter out of range", in: Candidate{Question: "q", Options: []string{"x", "y"}, CorrectOption: "D"}, dropped: "correct-option"},
		{name: "too few options", in: Candidate{Question: "q", Options: []string{"a", "a"}, CorrectOption: "a"}, dropped: "option-count"},
		{name: "too many options", in: Candidate{Question: "q", Options: []string{"1", "2", "3", "4", "5", "6", "7"}, CorrectOption: "1"}, dropped: "option-count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, dropped := repair([]Candidate{tt.in}, DefaultRepairers())
			if tt.dropped != "" {
				assert.Empty(t, out)
				require.Len(t, dropped, 1)
				var rerr *RepairError
				require.ErrorAs(t, dropped[0], &rerr)
				assert.Equal(t, tt.dropped, rerr.Repairer)
				return
			}
			require.Empty(t, dropped)
			require.Len(t, out, 1)
			assert.Equal(t, Question{Prompt: tt.want.Question, Options: tt.want.Options, Correct: tt.want.CorrectOption}, out[0])
		})
	}
}

func TestRepair_DropsRepeatedQuestionText(t *testing.T) {
	cands := []Candidate{
		{Question: "What is H2O?", Options: []string{"Water", "Salt"}, CorrectOption: "Water"},
		{Question: "what is  h2o?", Options: []string{"Ice", "Water"}, CorrectOption: "Water"},
	}
	out, dropped := repair(cands, DefaultRepairers())
	require.Len(t, out, 1)
	require.Len(t, dropped, 1)
	assert.Contains(t, dropped[0].Error(), "candidate 2")
}

func TestRepair_DoesNotAliasInput(t *testing.T) {
	cands := []Candidate{{Question: "q", Options: []string{" a", "b"}, CorrectOption: "a"}}
	repair(cands, DefaultRepairers())
	assert.Equal(t, " a", cands[0].Options[0])
}
