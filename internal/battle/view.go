package battle

// Fighter is a combatant as seen by the renderer.
type Fighter struct {
	Name  string
	Type  string
	HP    int
	MaxHP int
	Level int
}

// View is a read-only snapshot of the active battle for rendering.
type View struct {
	Phase    Phase
	Turn     Turn
	Outcome  Outcome
	Log      []string
	Selected Action
	CanAct   bool

	Enemy       Fighter
	Defender    Fighter // Ally creature, or the player
	HasAlly     bool
	PlayerHP    int
	PlayerMaxHP int
}

// View returns a snapshot of the active battle, or false when there is none.
func (b *System) View() (View, bool) {
	st := b.state
	if st == nil {
		return View{}, false
	}

	v := View{
		Phase:       st.Phase,
		Turn:        st.Turn,
		Outcome:     st.Outcome,
		Log:         st.Log(),
		Selected:    st.Selected,
		CanAct:      st.canAct(),
		HasAlly:     st.Ally != nil,
		PlayerHP:    st.Player.HP,
		PlayerMaxHP: st.Player.MaxHP,
		Enemy: Fighter{
			Name:  st.Enemy.Name,
			Type:  st.Enemy.Type,
			HP:    st.Enemy.HP,
			MaxHP: st.Enemy.MaxHP,
			Level: st.Enemy.Level,
		},
	}

	if st.Ally != nil {
		v.Defender = Fighter{
			Name:  st.Ally.Name,
			Type:  st.Ally.Type,
			HP:    st.Ally.HP,
			MaxHP: st.Ally.MaxHP,
			Level: st.Ally.Level,
		}
	} else {
		v.Defender = Fighter{
			Name:  st.Player.GetName(),
			HP:    st.Player.HP,
			MaxHP: st.Player.MaxHP,
			Level: st.Player.Level,
		}
	}
	return v, true
}
