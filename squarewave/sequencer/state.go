package sequencer

// State is the playback state of a Scheduler.
//
//	Idle --LoadSong--> Loaded --Start--> Playing --Poll (end)--> Finished
//	                                      |  ^
//	                                  Stop|  |Start (from the top)
//	                                      v  |
//	                                     Stopped
//
// A LoadSong from any state replaces the session; a failed load leaves Idle.
type State int

const (
	Idle State = iota
	Loaded
	Playing
	Stopped
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loaded:
		return "loaded"
	case Playing:
		return "playing"
	case Stopped:
		return "stopped"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}
