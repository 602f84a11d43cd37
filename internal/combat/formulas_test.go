package combat

import (
	"math"
	"testing"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name      string
	hp, maxHP int
	level     int
	attack    int
}

func newMockCombatant(name string, hp, attack, level int) *mockCombatant {
	return &mockCombatant{name: name, hp: hp, maxHP: hp, attack: attack, level: level}
}

func (m *mockCombatant) GetName() string      { return m.name }
func (m *mockCombatant) IsAlive() bool        { return m.hp > 0 }
func (m *mockCombatant) GetHP() int           { return m.hp }
func (m *mockCombatant) GetMaxHP() int        { return m.maxHP }
func (m *mockCombatant) GetLevel() int        { return m.level }
func (m *mockCombatant) EffectiveAttack() int { return EffectiveAttack(m.attack, m.level) }

func (m *mockCombatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, m.hp)
	m.hp -= actual
	return actual
}

func (m *mockCombatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, m.maxHP-m.hp)
	m.hp += actual
	return actual
}

// fixedRand returns scripted values.
type fixedRand struct {
	intn  int
	float float64
}

func (r fixedRand) Intn(n int) int {
	if r.intn >= n {
		return n - 1
	}
	return r.intn
}
func (r fixedRand) Float64() float64 { return r.float }

func TestEffectiveAttack(t *testing.T) {
	tests := []struct {
		base, level, want int
	}{
		{12, 1, 12},
		{12, 2, 13},
		{12, 3, 13},
		{10, 10, 15},
		{9, 0, 9},
	}

	for _, tt := range tests {
		if got := EffectiveAttack(tt.base, tt.level); got != tt.want {
			t.Errorf("EffectiveAttack(%d, %d) = %d, want %d", tt.base, tt.level, got, tt.want)
		}
	}
}

func TestEffectiveAttackMonotonic(t *testing.T) {
	for base := -3; base <= 20; base++ {
		prev := EffectiveAttack(base, 0)
		for level := 1; level <= 100; level++ {
			got := EffectiveAttack(base, level)
			if got < prev {
				t.Fatalf("EffectiveAttack(%d, %d) = %d < previous %d", base, level, got, prev)
			}
			prev = got
		}
	}
}

func TestDamageNeverBelowOne(t *testing.T) {
	for attack := -3; attack <= 20; attack++ {
		for offset := -2; offset <= 4; offset++ {
			if got := DamageWithOffset(attack, offset); got < 1 {
				t.Errorf("DamageWithOffset(%d, %d) = %d, want >= 1", attack, offset, got)
			}
		}
	}
}

func TestRollDamageRange(t *testing.T) {
	attacker := newMockCombatant("Flameling", 35, 12, 1)

	tests := []struct {
		intn int
		want int
	}{
		{0, 10}, // offset -2
		{2, 12}, // offset 0
		{6, 16}, // offset +4
	}

	for _, tt := range tests {
		if got := RollDamage(fixedRand{intn: tt.intn}, attacker); got != tt.want {
			t.Errorf("RollDamage(intn=%d) = %d, want %d", tt.intn, got, tt.want)
		}
	}

	weak := newMockCombatant("Weakling", 10, 0, 1)
	if got := RollDamage(fixedRand{intn: 0}, weak); got != 1 {
		t.Errorf("RollDamage(weak, -2) = %d, want 1", got)
	}
}

func TestCaptureChance(t *testing.T) {
	tests := []struct {
		name      string
		hp, maxHP int
		want      float64
	}{
		{"full health", 1, 1, 0.1},
		{"full health large", 40, 40, 0.1},
		{"half health", 20, 40, 0.45},
		{"one hp left", 1, 40, (1-1.0/40)*0.7 + 0.1},
		{"zero hp", 0, 40, 0.8},
		{"invalid max", 5, 0, 0.1},
	}

	for _, tt := range tests {
		got := CaptureChance(tt.hp, tt.maxHP)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: CaptureChance(%d, %d) = %v, want %v", tt.name, tt.hp, tt.maxHP, got, tt.want)
		}
	}
}

func TestCaptureChanceStrictlyDecreasing(t *testing.T) {
	const maxHP = 50
	prev := CaptureChance(1, maxHP)
	for hp := 2; hp <= maxHP; hp++ {
		got := CaptureChance(hp, maxHP)
		if got >= prev {
			t.Fatalf("CaptureChance(%d) = %v, not below CaptureChance(%d) = %v", hp, got, hp-1, prev)
		}
		if got < 0.1 || got > 0.8 {
			t.Fatalf("CaptureChance(%d) = %v out of [0.1, 0.8]", hp, got)
		}
		prev = got
	}
}

func TestRollCaptureAndEscape(t *testing.T) {
	target := newMockCombatant("Aquapup", 40, 10, 1)

	if RollCapture(fixedRand{float: 0.05}, target) != true {
		t.Error("RollCapture(0.05) at full HP should succeed")
	}
	if RollCapture(fixedRand{float: 0.1}, target) != false {
		t.Error("RollCapture(0.1) at full HP should fail")
	}

	if !RollEscape(fixedRand{float: 0.69}) {
		t.Error("RollEscape(0.69) should succeed")
	}
	if RollEscape(fixedRand{float: 0.7}) {
		t.Error("RollEscape(0.7) should fail")
	}
}

func TestExperienceFor(t *testing.T) {
	for level := 1; level <= 3; level++ {
		c := newMockCombatant("Sparkit", 38, 11, level)
		if got := ExperienceFor(c); got != level*20 {
			t.Errorf("ExperienceFor(level %d) = %d, want %d", level, got, level*20)
		}
	}
}
