package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferohs/clashdata/internal/gamedata"
)

func testStore(t *testing.T) *gamedata.Store {
	t.Helper()
	s, err := gamedata.Load(gamedata.TestSources())
	require.NoError(t, err, "loading test game data")
	return s
}

const playerJSON = `{
	"tag": "#2PP",
	"name": "TestPlayer",
	"townHallLevel": 13,
	"expLevel": 180,
	"trophies": 5200,
	"bestTrophies": 5600,
	"warStars": 900,
	"attackWins": 120,
	"defenseWins": 15,
	"clan": {
		"tag": "#CLAN",
		"name": "TestClan",
		"clanLevel": 20,
		"badgeUrls": {"small": "s", "medium": "m", "large": "l"}
	},
	"troops": [
		{"name": "Knight", "level": 1, "maxLevel": 6, "village": "home"},
		{"name": "Shade", "level": 2, "maxLevel": 2, "village": "home", "superTroopIsActive": true},
		{"name": "Frosty", "level": 2, "maxLevel": 3, "village": "home"},
		{"name": "Brand New Troop", "level": 1, "maxLevel": 1, "village": "home"}
	],
	"spells": [
		{"name": "Fireball", "level": 2, "maxLevel": 2, "village": "home"}
	],
	"heroes": [
		{"name": "War Chief", "level": 1, "maxLevel": 2, "village": "home"}
	]
}`

func TestParsePlayer(t *testing.T) {
	gd := testStore(t)

	p, err := ParsePlayer([]byte(playerJSON), gd)
	require.NoError(t, err)

	assert.Equal(t, "#2PP", p.Tag)
	assert.Equal(t, "TestPlayer", p.Name)
	assert.Equal(t, 13, p.TownHall)
	assert.Equal(t, 5200, p.Trophies)

	require.NotNil(t, p.Clan)
	assert.Equal(t, "#CLAN", p.Clan.Tag)
	assert.Equal(t, 20, p.Clan.Level)
}

func TestParsePlayer_UnitLists(t *testing.T) {
	gd := testStore(t)

	p, err := ParsePlayer([]byte(playerJSON), gd)
	require.NoError(t, err)

	// петы выделены из troops, порядок ответа сохранён
	require.Len(t, p.Troops, 3)
	assert.Equal(t, "Knight", p.Troops[0].Name())
	assert.Equal(t, "Shade", p.Troops[1].Name())
	assert.Equal(t, "Brand New Troop", p.Troops[2].Name())

	require.Len(t, p.Pets, 1)
	assert.Equal(t, "Frosty", p.Pets[0].Name())
	require.NotNil(t, p.Pets[0].Template())
	assert.True(t, p.Pets[0].Template().IsPet)

	require.Len(t, p.Spells, 1)
	require.Len(t, p.Heroes, 1)

	hero := p.Heroes[0]
	require.NotNil(t, hero.Template())
	dps, err := hero.DPS()
	require.NoError(t, err)
	assert.Equal(t, 120, dps)
}

func TestParsePlayer_UnknownUnit(t *testing.T) {
	gd := testStore(t)

	p, err := ParsePlayer([]byte(playerJSON), gd)
	require.NoError(t, err, "unknown unit must not fail the player parse")

	unknown := p.GetTroop("Brand New Troop")
	require.NotNil(t, unknown)
	assert.Nil(t, unknown.Template())

	_, err = unknown.DPS()
	assert.ErrorIs(t, err, gamedata.ErrNoTemplate)
}

func TestParsePlayer_SuperTroops(t *testing.T) {
	gd := testStore(t)

	p, err := ParsePlayer([]byte(playerJSON), gd)
	require.NoError(t, err)

	active := p.SuperTroops()
	require.Len(t, active, 1)
	assert.Equal(t, "Shade", active[0].Name())
}

func TestParsePlayer_Invalid(t *testing.T) {
	gd := testStore(t)

	_, err := ParsePlayer([]byte(`{`), gd)
	assert.Error(t, err)

	_, err = ParsePlayer([]byte(`{"name": "NoTag"}`), gd)
	assert.Error(t, err, "player without tag must be rejected")
}
