package play

// NoteCode classifies a note attached to a Result.
type NoteCode string

// Informational notes describe what the resolver did.
const (
	NoteHomeRun           NoteCode = "home_run"
	NoteTriple            NoteCode = "triple"
	NoteRunnerFirstSecond NoteCode = "runner_first_to_second"
	NoteForceAtHome       NoteCode = "force_at_home_no_run"
	NoteFlyThirdOut       NoteCode = "fly_third_out_no_run"
	NoteStrikeoutThirdOut NoteCode = "strikeout_third_out_no_run"
	NoteSacFly            NoteCode = "sac_fly"
	NoteGroundOutRun      NoteCode = "ground_out_run_scores"
	NoteSacBunt           NoteCode = "sac_bunt_advance"
	NoteDoublePlay        NoteCode = "double_play"
	NoteDoublePlayRun     NoteCode = "double_play_run_scores"
	NoteBasesLoadedWalk   NoteCode = "bases_loaded_walk"
	NoteErrorRunnersHold  NoteCode = "error_runners_hold"
	NoteDroppedThird      NoteCode = "d3k_batter_reaches"
	NoteNoRunners         NoteCode = "wp_pb_no_runners"
)

// Advisory notes mark a legal result that needs human confirmation.
const (
	NoteTagPlayTiming    NoteCode = "tag_play_timing"
	NoteRunnerSpeed      NoteCode = "runner_speed"
	NoteRunnerIdentity   NoteCode = "runner_identity"
	NoteScoreboardUpdate NoteCode = "scoreboard_update"
)

// Invalidity notes explain why a combination cannot occur.
const (
	NoteDoublePlayTwoOuts   NoteCode = "dp_two_outs"
	NoteDoublePlayNoRunners NoteCode = "dp_no_runners"
	NoteSacBuntNoRunners    NoteCode = "sac_bunt_no_runners"
	NoteDroppedThirdBlocked NoteCode = "d3k_first_occupied"
	NoteStealNoRunners      NoteCode = "sb_no_runners"
	NoteCaughtNoRunners     NoteCode = "cs_no_runners"
)

// Advisory reports whether the code flags an ambiguity left to a human.
func (c NoteCode) Advisory() bool {
	switch c {
	case NoteTagPlayTiming, NoteRunnerSpeed, NoteRunnerIdentity, NoteScoreboardUpdate:
		return true
	}
	return false
}

// Invalidity reports whether the code explains an illegal combination.
func (c NoteCode) Invalidity() bool {
	switch c {
	case NoteDoublePlayTwoOuts, NoteDoublePlayNoRunners, NoteSacBuntNoRunners,
		NoteDroppedThirdBlocked, NoteStealNoRunners, NoteCaughtNoRunners:
		return true
	}
	return false
}

// Note is a human-readable caveat with a stable code.
type Note struct {
	Code    NoteCode `json:"code"`
	Message string   `json:"message"`
}
