package entity

// Direction is the way an actor faces.
type Direction int

const (
	DirectionDown Direction = iota
	DirectionUp
	DirectionLeft
	DirectionRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four facings.
func (d Direction) Valid() bool {
	return d >= DirectionDown && d <= DirectionRight
}

// directionFor maps a step to a facing, checking the vertical axis first.
func directionFor(dx, dy int) (Direction, bool) {
	switch {
	case dy < 0:
		return DirectionUp, true
	case dy > 0:
		return DirectionDown, true
	case dx < 0:
		return DirectionLeft, true
	case dx > 0:
		return DirectionRight, true
	default:
		return DirectionDown, false
	}
}
