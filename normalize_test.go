package nethys_test

import (
	"testing"

	"github.com/fwojciec/nethys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"2 gp, 5 sp", 250, true},
		{"", 0, true},
		{"15 cp", 15, true},
		{"3 gp", 300, true},
		{"1,600 gp", 160000, true},
		{"1,000,000 gp", 100000000, true},
		{"12,500 gp, 5 sp", 1250050, true},
		{"5 sp, 2 cp", 52, true},
		{"priceless", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := nethys.ParsePrice(tt.in)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   *int
		wantOK bool
	}{
		{"3 rounds", intPtr(18), true},
		{"2 hours", intPtr(7200), true},
		{"1 year", intPtr(31536000), true},
		{"1 minute", intPtr(60), true},
		{"", nil, true},
		{"10 fortnights", nil, false},
		{"sustained", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := nethys.ParseDuration(tt.in)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   *int
		wantOK bool
	}{
		{"touch", intPtr(0), true},
		{"planetary", intPtr(10000000), true},
		{"unlimited", intPtr(100000000), true},
		{"30 feet", intPtr(30), true},
		{"5 miles", intPtr(26400), true},
		{"1,000 feet", intPtr(1000), true},
		{"120-foot line", intPtr(120), true},
		{"", nil, true},
		{"varies", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := nethys.ParseRange(tt.in)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseBulk(t *testing.T) {
	t.Parallel()

	got, ok := nethys.ParseBulk("L")
	assert.True(t, ok)
	assert.InDelta(t, 0.1, got, 1e-9)

	got, ok = nethys.ParseBulk("2")
	assert.True(t, ok)
	assert.InDelta(t, 2.0, got, 1e-9)

	got, ok = nethys.ParseBulk("")
	assert.True(t, ok)
	assert.Zero(t, got)

	got, ok = nethys.ParseBulk("heavy")
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestParseSpeed(t *testing.T) {
	t.Parallel()

	t.Run("modes", func(t *testing.T) {
		t.Parallel()

		got, ok := nethys.ParseSpeed("25 feet, burrow 10 feet, fly 40 feet, swim 20 feet")

		require.True(t, ok)
		assert.Equal(t, intPtr(25), got.Land)
		assert.Equal(t, intPtr(10), got.Burrow)
		assert.Nil(t, got.Climb)
		assert.Equal(t, intPtr(40), got.Fly)
		assert.Equal(t, intPtr(20), got.Swim)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		got, ok := nethys.ParseSpeed("")

		assert.True(t, ok)
		assert.Equal(t, nethys.Speed{}, got)
	})

	t.Run("unrecognized", func(t *testing.T) {
		t.Parallel()

		_, ok := nethys.ParseSpeed("as the host")

		assert.False(t, ok)
	})
}

func TestParseInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   *int
		wantOK bool
	}{
		{"+12", intPtr(12), true},
		{"-1", intPtr(-1), true},
		{"–1", intPtr(-1), true},
		{"22 (24 with shield)", intPtr(22), true},
		{"", nil, true},
		{"—", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := nethys.ParseInt(tt.in)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestSplitCommaSpecial(t *testing.T) {
	t.Parallel()

	got := nethys.SplitCommaSpecial("fire 5, physical 5 (except magical, silver), non- lethal 2;")

	assert.Equal(t, []string{"fire 5", "physical 5 (except magical, silver)", "non-lethal 2"}, got)
	assert.Nil(t, nethys.SplitCommaSpecial(""))
}

func TestNormalizeTraits(t *testing.T) {
	t.Parallel()

	got := nethys.NormalizeTraits([]string{"Deadly d10", "Fatal Aim d12", "thrown 20 ft.", "Agile"})

	assert.Equal(t, []string{"Deadly", "Fatal Aim", "thrown", "Agile"}, got)
	assert.Nil(t, nethys.NormalizeTraits(nil))
}

func TestRarity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uncommon", nethys.Rarity([]string{"Uncommon", "Evocation"}))
	assert.Equal(t, "unique", nethys.Rarity([]string{"Unique"}))
	assert.Equal(t, "common", nethys.Rarity(nil))
}

func TestSchool(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "necromancy", nethys.School([]string{"Healing", "Necromancy", "Positive"}))
	assert.Empty(t, nethys.School([]string{"Fire"}))
}

func TestNormalizeSource(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Core Rulebook", nethys.NormalizeSource("Core Rulebook pg. 338"))
	assert.Equal(t, "Bestiary", nethys.NormalizeSource("Bestiary"))
}

func TestSenses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"darkvision", "scent (imprecise) 30 feet"}, nethys.Senses("+7; darkvision, scent (imprecise) 30 feet"))
	assert.Nil(t, nethys.Senses("+7"))
}
