package directory

import (
	"testing"

	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedsSelf(t *testing.T) {
	d := New("Kate")

	me, err := d.Get(models.SelfID)
	require.NoError(t, err)
	assert.Equal(t, "Kate", me.Name)
	assert.Equal(t, models.StatusOffline, me.Status)
	assert.Equal(t, Waiting, me.LastSeen)
	assert.False(t, me.HasPosition())
	assert.Len(t, d.All(), 1)
}

func TestApplySelfFix(t *testing.T) {
	d := New("")

	me := d.ApplySelfFix(37.1, -122.2)
	assert.Equal(t, 37.1, me.Latitude)
	assert.Equal(t, -122.2, me.Longitude)
	assert.Equal(t, models.StatusHome, me.Status)
	assert.Equal(t, me, d.Self())
}

func TestApplyPeerUpdate_UnknownMemberIsUpserted(t *testing.T) {
	d := New("")

	peer, err := d.ApplyPeerUpdate("peer-1", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, JustNow, peer.LastSeen)
	assert.Equal(t, models.StatusHome, peer.Status)

	got, err := d.Get("peer-1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Latitude)
	assert.Len(t, d.All(), 2)

	// Повторное обновление не создает дубликат
	_, err = d.ApplyPeerUpdate("peer-1", 11, 21)
	require.NoError(t, err)
	assert.Len(t, d.All(), 2)
}

func TestApplyPeerUpdate_RejectsSelfAndEmptyID(t *testing.T) {
	d := New("")

	_, err := d.ApplyPeerUpdate(models.SelfID, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidMemberID)

	_, err = d.ApplyPeerUpdate("", 1, 1)
	assert.ErrorIs(t, err, ErrInvalidMemberID)

	assert.False(t, d.Self().HasPosition())
}

func TestSelfAndPeerUpdatesCommute(t *testing.T) {
	a := New("")
	a.ApplySelfFix(1, 2)
	_, err := a.ApplyPeerUpdate("x", 3, 4)
	require.NoError(t, err)

	b := New("")
	_, err = b.ApplyPeerUpdate("x", 3, 4)
	require.NoError(t, err)
	b.ApplySelfFix(1, 2)

	ma, _ := a.Get("x")
	mb, _ := b.Get("x")
	assert.Equal(t, ma, mb)
	assert.Equal(t, a.Self(), b.Self())
	assert.ElementsMatch(t, a.All(), b.All())
}

func TestUpsert(t *testing.T) {
	d := New("")

	require.NoError(t, d.Upsert(models.Member{ID: "p", Name: "Dad", Role: "Member"}))
	require.NoError(t, d.Upsert(models.Member{ID: "p", Name: "Papa", Role: "Member"}))

	p, err := d.Get("p")
	require.NoError(t, err)
	assert.Equal(t, "Papa", p.Name)
	assert.Len(t, d.All(), 2)

	assert.ErrorIs(t, d.Upsert(models.Member{ID: models.SelfID}), ErrInvalidMemberID)
}

func TestGet_NotFound(t *testing.T) {
	d := New("")
	_, err := d.Get("ghost")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestUpdateSelf(t *testing.T) {
	d := New("")
	me := d.UpdateSelf("MOM", "SnowMan")
	assert.Equal(t, "MOM", me.Name)
	assert.Equal(t, "SnowMan", me.AvatarIcon)

	me = d.UpdateSelf("", "")
	assert.Equal(t, "MOM", me.Name)
}

func TestRestore(t *testing.T) {
	d := New("")
	d.Restore([]models.Member{
		{ID: models.SelfID, Name: "Saved", Status: models.StatusHome, Latitude: 5, Longitude: 6},
		{ID: "p1", Name: "Peer"},
		{ID: ""},
	})

	assert.Equal(t, "Saved", d.Self().Name)
	assert.Len(t, d.All(), 2)
	_, err := d.Get("p1")
	assert.NoError(t, err)
}
