package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// pulse ping-pongs a value between two bounds forever.
type pulse struct {
	from, to float32
	duration float32
	easing   ease.TweenFunc
	tween    *gween.Tween
}

func newPulse(from, to, duration float32, easing ease.TweenFunc) *pulse {
	return &pulse{
		from:     from,
		to:       to,
		duration: duration,
		easing:   easing,
		tween:    gween.New(from, to, duration, easing),
	}
}

// Update advances by dt seconds and returns the current value.
func (p *pulse) Update(dt float32) float32 {
	v, done := p.tween.Update(dt)
	if done {
		p.from, p.to = p.to, p.from
		p.tween = gween.New(p.from, p.to, p.duration, p.easing)
	}
	return v
}
