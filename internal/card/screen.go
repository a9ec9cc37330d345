package card

// Screen identifies which card page is showing.
type Screen string

const (
	ScreenStart    Screen = "start"
	ScreenMenu     Screen = "menu"
	ScreenQuestion Screen = "question"
	ScreenSuccess  Screen = "success"
)

// Screens lists every screen in navigation order.
var Screens = []Screen{ScreenStart, ScreenMenu, ScreenQuestion, ScreenSuccess}

func (s Screen) Valid() bool {
	switch s {
	case ScreenStart, ScreenMenu, ScreenQuestion, ScreenSuccess:
		return true
	}
	return false
}

// Trigger is a user action directed at the card.
type Trigger string

const (
	TriggerTapCard  Trigger = "tap_card"
	TriggerTapMusic Trigger = "tap_music"
	TriggerTapHeart Trigger = "tap_heart"
	TriggerTapBack  Trigger = "tap_back"
	TriggerTapYes   Trigger = "tap_yes"
	TriggerHoverNo  Trigger = "hover_no"
)

type edge struct {
	from    Screen
	trigger Trigger
}

var transitions = map[edge]Screen{
	{ScreenStart, TriggerTapCard}:    ScreenMenu,
	{ScreenMenu, TriggerTapMusic}:    ScreenMenu,
	{ScreenMenu, TriggerTapHeart}:    ScreenQuestion,
	{ScreenQuestion, TriggerTapBack}: ScreenMenu,
	{ScreenQuestion, TriggerTapYes}:  ScreenSuccess,
	{ScreenQuestion, TriggerHoverNo}: ScreenQuestion,
}

// Transition returns the screen reached from s by t and whether t is wired
// for s. Unwired triggers leave the screen unchanged.
func Transition(s Screen, t Trigger) (Screen, bool) {
	next, ok := transitions[edge{s, t}]
	if !ok {
		return s, false
	}
	return next, true
}

// Replay folds Transition over triggers starting from ScreenStart.
func Replay(triggers ...Trigger) Screen {
	s := ScreenStart
	for _, t := range triggers {
		s, _ = Transition(s, t)
	}
	return s
}
