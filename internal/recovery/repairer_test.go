package recovery

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repairCases = []struct {
	name string
	in   string
	want string
}{
	{
		name: "trailing comma before brace",
		in:   `{"a":1,}`,
		want: `{"a":1}`,
	},
	{
		name: "trailing comma before bracket keeps whitespace",
		in:   `[1, 2, ]`,
		want: `[1, 2 ]`,
	},
	{
		name: "repeated trailing commas",
		in:   `{"a":[1,,],}`,
		want: `{"a":[1]}`,
	},
	{
		name: "array close comma quote with newlines",
		in:   "{\"a\":[1]\n ,\n \"b\":2}",
		want: `{"a":[1],"b":2}`,
	},
	{
		name: "quote comma brace",
		in:   `{"a":"x" , }`,
		want: `{"a":"x"}`,
	},
	{
		name: "single quoted key",
		in:   `{'a': 1}`,
		want: `{"a": 1}`,
	},
	{
		name: "single quoted value",
		in:   `{"a": 'b'}`,
		want: `{"a": "b"}`,
	},
	{
		name: "single quoted values in array",
		in:   `{"tips": ['one', 'two']}`,
		want: `{"tips": ["one", "two"]}`,
	},
	{
		name: "apostrophe inside single quoted value",
		in:   `{'note': 'it's fine'}`,
		want: `{"note": "it's fine"}`,
	},
	{
		name: "double quote inside single quoted value",
		in:   `{'q': 'say "hi"'}`,
		want: `{"q": "say \"hi\""}`,
	},
	{
		name: "escaped apostrophe inside single quoted value",
		in:   `{'q': 'don\'t'}`,
		want: `{"q": "don't"}`,
	},
	{
		name: "apostrophes in double quoted strings untouched",
		in:   `{"a": "St. Peter's Square", "b": "it's 'quoted', ok"}`,
		want: `{"a": "St. Peter's Square", "b": "it's 'quoted', ok"}`,
	},
	{
		name: "structural characters in strings untouched",
		in:   `{"a": "x,}", "b": "y,]", "c": "] , \"z"}`,
		want: `{"a": "x,}", "b": "y,]", "c": "] , \"z"}`,
	},
	{
		name: "valid json untouched",
		in:   `{"summary":"ok","list":[1,2,3],"nested":{"k":"v"}}`,
		want: `{"summary":"ok","list":[1,2,3],"nested":{"k":"v"}}`,
	},
	{
		name: "empty input",
		in:   ``,
		want: ``,
	},
}

func TestRepair(t *testing.T) {
	for _, tt := range repairCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repair(tt.in))
		})
	}
}

func TestRepair_Idempotent(t *testing.T) {
	inputs := []string{
		"{\"a\":[1,2,],\n'b': 'c' ,\n}",
		`{"x": "it's", 'y': 'it's', "z": [ 'a' , 'b' , ] }`,
		`{"unterminated": "abc`,
		`{'unterminated: 1}`,
		`{"a":1} trailing 'prose', here`,
	}
	for _, tt := range repairCases {
		inputs = append(inputs, tt.in)
	}

	for _, in := range inputs {
		once := Repair(in)
		assert.Equal(t, once, Repair(once), "input %q", in)
	}
}

func TestRepair_MakesTrailingCommaParse(t *testing.T) {
	in := `{"a":1,}`
	require.False(t, json.Valid([]byte(in)))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(Repair(in)), &got))
	assert.Equal(t, map[string]any{"a": float64(1)}, got)
}

func TestRepair_RepairedOutputIsValidJSON(t *testing.T) {
	for _, in := range []string{
		`{'summary': 'Trip', 'tags': ['a', 'b',],}`,
		"{\"a\": [\n  {\"b\": 1},\n  {\"c\": 2},\n]\n,\n\"d\": 'e'}",
		`{"note": 'Don\'t miss "the view"'}`,
	} {
		assert.True(t, json.Valid([]byte(Repair(in))), "repair of %q", in)
	}
}
