package bus

import (
	"testing"

	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_LocationUpdateWireFormat(t *testing.T) {
	m, err := Decode([]byte(`{"type":"LOCATION_UPDATE","memberId":"kid","lat":37.5,"lng":-122.25}`))
	require.NoError(t, err)
	assert.Equal(t, LocationUpdate, m.Type)
	assert.Equal(t, "kid", m.MemberID)
	assert.Equal(t, 37.5, m.Latitude)
	assert.Equal(t, -122.25, m.Longitude)
	assert.Empty(t, m.Origin)
}

func TestEncode_LocationUpdateKeepsZeroCoordinates(t *testing.T) {
	msg := NewLocationUpdate("kid", 0, 0)
	msg.Origin = "inst-1"

	data, err := Encode(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"LOCATION_UPDATE","origin":"inst-1","memberId":"kid","lat":0,"lng":0}`, string(data))
}

func TestEncodeDecode_StatusUpdate(t *testing.T) {
	report := models.ActivityReport{
		ID:              "r1",
		SenderID:        "kid",
		SenderName:      "KID",
		Type:            models.ReportAutomation,
		Timestamp:       "08:15",
		MapLink:         "https://www.google.com/maps?q=1,2",
		TargetMemberIDs: []string{"all"},
		Message:         "KID ENTERED SCHOOL",
	}

	data, err := Encode(NewStatusUpdate(report))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"targetMemberIds":["all"]`)

	m, err := Decode(data)
	require.NoError(t, err)
	require.NotNil(t, m.Report)
	assert.Equal(t, report, *m.Report)
}

func TestEncodeDecode_AutomationsUpdate(t *testing.T) {
	rules := []models.GeofenceRule{{
		ID:                "r",
		Name:              "HOME",
		Latitude:          1,
		Longitude:         2,
		RadiusMeters:      100,
		TriggerMemberIDs:  models.NewSelector("a"),
		ReceiverMemberIDs: models.AllMembers(),
		Enabled:           true,
	}}

	data, err := Encode(NewAutomationsUpdate(rules))
	require.NoError(t, err)

	m, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, rules, m.Automations)

	// Пустой список правил - валидное сообщение
	data, err = Encode(NewAutomationsUpdate(nil))
	require.NoError(t, err)
	m, err = Decode(data)
	require.NoError(t, err)
	assert.Empty(t, m.Automations)
}

func TestDecode_MemberMessages(t *testing.T) {
	m, err := Decode([]byte(`{"type":"MEMBER_JOINED","member":{"id":"p","name":"DAD","status":"away"}}`))
	require.NoError(t, err)
	assert.Equal(t, MemberJoined, m.Type)
	assert.Equal(t, models.StatusAway, m.Member.Status)

	_, err = Decode([]byte(`{"type":"MEMBER_UPDATED","member":{"name":"no id"}}`))
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]error{
		`not json`:                           ErrMalformedMessage,
		`{"type":"PING"}`:                    ErrUnknownMessage,
		`{"type":"LOCATION_UPDATE","lat":1}`: ErrMalformedMessage,
		`{"type":"LOCATION_UPDATE","memberId":"x","lat":"north"}`: ErrMalformedMessage,
		`{"type":"STATUS_UPDATE"}`:                                ErrMalformedMessage,
		`{"type":"AUTOMATIONS_UPDATE"}`:                           ErrMalformedMessage,
	}
	for raw, want := range cases {
		_, err := Decode([]byte(raw))
		assert.ErrorIs(t, err, want, raw)
	}
}

func TestEncode_UnknownType(t *testing.T) {
	_, err := Encode(Message{Type: "PING"})
	assert.ErrorIs(t, err, ErrUnknownMessage)
}

func TestTopic(t *testing.T) {
	assert.Equal(t, "igloo_live_sync:POLAR-1337", Topic("igloo_live_sync", "POLAR-1337"))
}
