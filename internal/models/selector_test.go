package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_ZeroValueIsAll(t *testing.T) {
	var s Selector
	assert.True(t, s.IsAll())
	assert.True(t, s.Matches("anyone"))
	assert.Equal(t, []string{"all"}, s.Values())
}

func TestSelector_NewSelector(t *testing.T) {
	assert.True(t, NewSelector().IsAll())
	assert.True(t, NewSelector("a", "all", "b").IsAll())

	s := NewSelector("a", "b", "a", "")
	assert.False(t, s.IsAll())
	assert.Equal(t, []string{"a", "b"}, s.IDs())
	assert.True(t, s.Matches("b"))
	assert.False(t, s.Matches("me"))
}

func TestSelector_Toggle(t *testing.T) {
	s := AllMembers().Toggle("a")
	assert.Equal(t, []string{"a"}, s.IDs())

	s = s.Toggle("b")
	assert.Equal(t, []string{"a", "b"}, s.IDs())

	// Выбор "all" сбрасывает явный список
	assert.True(t, s.Toggle("all").IsAll())

	s = s.Toggle("a")
	assert.Equal(t, []string{"b"}, s.IDs())

	// Снятие последнего id возвращает "all", а не пустой список
	s = s.Toggle("b")
	assert.True(t, s.IsAll())
	assert.Equal(t, []string{"all"}, s.Values())
}

func TestSelector_ToggleDoesNotMutateOriginal(t *testing.T) {
	orig := NewSelector("a", "b")
	_ = orig.Toggle("a")
	_ = orig.Toggle("c")
	assert.Equal(t, []string{"a", "b"}, orig.IDs())
}

func TestSelector_JSON(t *testing.T) {
	data, err := json.Marshal(NewSelector("x", "y"))
	require.NoError(t, err)
	assert.JSONEq(t, `["x","y"]`, string(data))

	data, err = json.Marshal(AllMembers())
	require.NoError(t, err)
	assert.JSONEq(t, `["all"]`, string(data))

	cases := map[string]bool{
		`["all"]`:       true,
		`[]`:            true,
		`null`:          true,
		`"all"`:         true,
		`{"ids":["x"]}`: true,
		`42`:            true,
		`["x"]`:         false,
	}
	for raw, wantAll := range cases {
		var s Selector
		require.NoError(t, json.Unmarshal([]byte(raw), &s), raw)
		assert.Equal(t, wantAll, s.IsAll(), raw)
	}
}

func TestGeofenceRule_UnknownSelectorShapeDefaultsToAll(t *testing.T) {
	raw := `{"id":"r1","name":"HOME","lat":1,"lng":2,"radius":50,"triggerMemberIds":{"legacy":true},"receiverMemberIds":["p1"],"message":"m","enabled":true}`

	var rule GeofenceRule
	require.NoError(t, json.Unmarshal([]byte(raw), &rule))
	assert.True(t, rule.TriggerMemberIDs.IsAll())
	assert.Equal(t, []string{"p1"}, rule.ReceiverMemberIDs.IDs())
	assert.Equal(t, 50.0, rule.RadiusMeters)
}
