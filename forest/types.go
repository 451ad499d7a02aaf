// Package forest defines cell states, weather, forecast entries and
// sentinel errors for the fire-spread simulator.
package forest

import "errors"

// Sentinel errors for forest operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("forest: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("forest: all rows must have the same length")
	// ErrBadBurnDuration indicates a burn duration below one day.
	ErrBadBurnDuration = errors.New("forest: burn duration must be at least 1 day")
	// ErrOutOfRange indicates coordinates outside the grid.
	ErrOutOfRange = errors.New("forest: coordinates out of range")
	// ErrUnknownState indicates a cell character outside T, F, B and ' '.
	ErrUnknownState = errors.New("forest: unknown cell state")
	// ErrUnknownWeather indicates a forecast flag outside N, S, E, W and R.
	ErrUnknownWeather = errors.New("forest: unknown weather flag")
	// ErrEmptyForecast indicates a forecast without entries.
	ErrEmptyForecast = errors.New("forest: forecast must have at least one entry")
	// ErrUnorderedForecast indicates forecast days that do not strictly increase.
	ErrUnorderedForecast = errors.New("forest: forecast days must strictly increase")
)

// State is the condition of a single patch of land.
type State int

const (
	// Tree is a tree that is not on fire.
	Tree State = iota
	// Fire is a tree that is currently burning.
	Fire
	// Burnt is a tree that has already burnt down.
	Burnt
	// Empty is a patch of land without a tree.
	Empty
)

// Rune returns the single-character file/report form of s.
func (s State) Rune() rune {
	switch s {
	case Tree:
		return 'T'
	case Fire:
		return 'F'
	case Burnt:
		return 'B'
	default:
		return ' '
	}
}

// String returns the state name.
func (s State) String() string {
	switch s {
	case Tree:
		return "tree"
	case Fire:
		return "fire"
	case Burnt:
		return "burnt"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// ParseState maps 'T', 'F', 'B' and ' ' to a State.
func ParseState(r rune) (State, error) {
	switch r {
	case 'T':
		return Tree, nil
	case 'F':
		return Fire, nil
	case 'B':
		return Burnt, nil
	case ' ':
		return Empty, nil
	default:
		return Empty, ErrUnknownState
	}
}

// Weather is the forecast for one day: a wind direction or rain.
// The wind direction names where the fire is pushed.
type Weather int

const (
	// North pushes fire to the row above.
	North Weather = iota
	// South pushes fire to the row below.
	South
	// East pushes fire to the column on the right.
	East
	// West pushes fire to the column on the left.
	West
	// Rain stops all spreading for the day.
	Rain
)

// Rune returns the forecast-file flag of w.
func (w Weather) Rune() rune {
	switch w {
	case North:
		return 'N'
	case South:
		return 'S'
	case East:
		return 'E'
	case West:
		return 'W'
	default:
		return 'R'
	}
}

// String returns the weather name.
func (w Weather) String() string {
	switch w {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Rain:
		return "rain"
	default:
		return "unknown"
	}
}

// ParseWeather maps 'N', 'S', 'E', 'W' and 'R' to a Weather.
func ParseWeather(r rune) (Weather, error) {
	switch r {
	case 'N':
		return North, nil
	case 'S':
		return South, nil
	case 'E':
		return East, nil
	case 'W':
		return West, nil
	case 'R':
		return Rain, nil
	default:
		return Rain, ErrUnknownWeather
	}
}

// Entry is one explicit forecast line: from Day on, the weather is Weather
// until the next entry.
type Entry struct {
	Day     int
	Weather Weather
}

// Conditions is the effective weather for a day.
// Changed is true when the forecast names that exact day.
type Conditions struct {
	Weather Weather
	Changed bool
}

// Day is a simulation snapshot handed to the Simulate visitor.
// Forest is live; copy with Rows() to keep it past the callback.
type Day struct {
	Number int
	Conditions
	Forest *Forest
}
