package entity

import (
	"testing"

	"github.com/samdwyer/terracreatures/internal/gamedata"
)

func TestNewCreatureFromDef(t *testing.T) {
	def := &gamedata.SpeciesDef{ID: "rockling", Name: "Rockling", Type: "rock", Attack: 14, HP: 30}

	c := NewCreatureFromDef(def, 3)

	if c.Name != "Rockling" || c.Type != "rock" {
		t.Errorf("NewCreatureFromDef() = %q/%q, want Rockling/rock", c.Name, c.Type)
	}
	if c.HP != 30 || c.MaxHP != 30 {
		t.Errorf("NewCreatureFromDef() HP = %d/%d, want 30/30", c.HP, c.MaxHP)
	}
	if c.Level != 3 {
		t.Errorf("NewCreatureFromDef() Level = %d, want 3", c.Level)
	}
	if got := c.EffectiveAttack(); got != 15 {
		t.Errorf("EffectiveAttack() = %d, want 15", got)
	}
}

func TestCreatureDamageAndHeal(t *testing.T) {
	c := NewCreature("Aquapup", "water", 10, 40)

	if got := c.TakeDamage(15); got != 15 {
		t.Errorf("TakeDamage(15) = %d, want 15", got)
	}
	if got := c.TakeDamage(100); got != 25 {
		t.Errorf("TakeDamage(100) = %d, want 25", got)
	}
	if c.HP != 0 || c.IsAlive() {
		t.Errorf("HP = %d alive = %v, want 0 and fainted", c.HP, c.IsAlive())
	}
	if got := c.TakeDamage(-3); got != 0 {
		t.Errorf("TakeDamage(-3) = %d, want 0", got)
	}

	if got := c.Heal(100); got != 40 {
		t.Errorf("Heal(100) = %d, want 40", got)
	}
	if c.HP != c.MaxHP {
		t.Errorf("HP = %d, want %d", c.HP, c.MaxHP)
	}
}

func TestCreatureCloneIsIndependent(t *testing.T) {
	original := NewCreature("Sparkit", "electric", 11, 38)
	original.Level = 2
	original.TakeDamage(10)

	clone := original.Clone()
	if *clone != *original {
		t.Fatalf("Clone() = %+v, want %+v", *clone, *original)
	}

	original.TakeDamage(5)
	original.Level = 3
	if clone.HP != 28 || clone.Level != 2 {
		t.Errorf("clone changed with original: HP=%d level=%d", clone.HP, clone.Level)
	}
}

func TestCreatureHPFraction(t *testing.T) {
	c := NewCreature("Leafling", "grass", 9, 45)
	if got := c.HPFraction(); got != 1 {
		t.Errorf("HPFraction() = %v, want 1", got)
	}
	c.HP = 0
	if got := c.HPFraction(); got != 0 {
		t.Errorf("HPFraction() = %v, want 0", got)
	}
}
