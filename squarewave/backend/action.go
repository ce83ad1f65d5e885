package backend

// Action is a request from a backend to the control loop.
type Action int

const (
	Quit Action = iota
	TogglePlayback
	NextSong
	PreviousSong
)

func (a Action) String() string {
	switch a {
	case Quit:
		return "quit"
	case TogglePlayback:
		return "toggle-playback"
	case NextSong:
		return "next-song"
	case PreviousSong:
		return "previous-song"
	default:
		return "unknown"
	}
}
