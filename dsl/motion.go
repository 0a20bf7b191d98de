package dsl

import (
	gosheet "github.com/reoring/gosheet"
)

// Transition declares a transition of one property; durations are in
// milliseconds.
func Transition(property string, durationMs float64, easing string) gosheet.Property {
	return gosheet.TransitionProp{Value: gosheet.Transition{
		Property: property,
		Duration: durationMs,
		Easing:   easing,
	}}
}

// Step builds one keyframe at the given percent position.
func Step(percent float64, props ...gosheet.Property) gosheet.AnimationStep {
	return gosheet.AnimationStep{Percent: percent, Properties: props}
}

// Animate declares an animation with ordered keyframe steps. A repeat count
// of zero or less runs forever.
func Animate(durationMs float64, easing string, repeat int, steps ...gosheet.AnimationStep) gosheet.Property {
	return gosheet.AnimationProp{Value: gosheet.Animation{
		Duration: durationMs,
		Easing:   easing,
		Repeat:   repeat,
		Steps:    steps,
	}}
}
