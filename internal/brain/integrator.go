package brain

import (
	"math"

	"github.com/iburimskiy/brain-visualization/internal/config"
)

// interactRadius is the pointer's reach, wider while held.
func (s *Sim) interactRadius() float64 {
	if s.Pointer.Down {
		return config.HeldInteractRadius
	}
	return config.InteractRadius
}

// integrate updates brightness and kinematics of every node. Brightness and
// click energy inject velocity, so they run before the spring step.
func (s *Sim) integrate() {
	radius := s.interactRadius()
	force := float64(config.IdleForce)
	if s.Pointer.Down {
		force = config.HeldForce
	}
	dir := -1.0
	if s.Attract {
		dir = 1
	}
	center := s.Center()
	floatAmp := config.FloatAmplitude + s.GlobalEnergy*config.FloatEnergyGain
	active := s.Pointer.Active()

	for i := range s.Nodes {
		n := &s.Nodes[i]

		toPointer := s.Pointer.Pos.Sub(n.Base)
		dist := toPointer.Len()
		if active && dist < radius {
			near := 1 - dist/radius
			n.Vel = n.Vel.Add(polar(toPointer.Angle(), near*force*config.ForceScale*dir))
			n.TargetBrightness = math.Min(1, 0.8+near*0.5)
		} else {
			n.TargetBrightness = n.Layer.RestBrightness()
		}

		n.Brightness += (n.TargetBrightness - n.Brightness) * config.BrightnessSmoothing

		if n.ClickEnergy > 0 {
			n.ClickEnergy *= config.ClickEnergyDecay
			n.Brightness = math.Min(1, n.Brightness+n.ClickEnergy*config.ClickEnergyGlow)
			out := n.Base.Sub(center).Angle()
			n.Vel = n.Vel.Add(polar(out, n.ClickEnergy*config.ClickEnergyPush))
		}

		n.Vel = n.Vel.Add(n.Base.Sub(n.Pos).Scale(config.SpringStiffness))
		n.Vel = n.Vel.Scale(config.VelocityDamping)

		drift := Vec{
			math.Sin(s.Time*0.5+n.Phase) * floatAmp,
			math.Cos(s.Time*0.7+n.Phase) * floatAmp,
		}
		n.Pos = n.Base.Add(n.Vel).Add(drift)
	}
}
